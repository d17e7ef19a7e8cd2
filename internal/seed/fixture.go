// Package seed loads the demo fixture and writes it through the services,
// so levels and counters follow the same rules as API writes.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"

	models "cms/internal/domain/models/cms"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/seed.yaml
var defaultFixture []byte

// Fixture is the seed document
type Fixture struct {
	Admins  []AdminFixture  `yaml:"admins"`
	Folders []FolderFixture `yaml:"folders"`
}

type AdminFixture struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// FolderFixture is one folder with its nested children and content
type FolderFixture struct {
	Name      string            `yaml:"name"`
	ShortName string            `yaml:"short_name"`
	Type      models.FolderType `yaml:"type"`
	Rank      models.FolderRank `yaml:"rank"`
	Children  []FolderFixture   `yaml:"children"`
	Files     []FileFixture     `yaml:"files"`
}

type FileFixture struct {
	Name     string             `yaml:"name"`
	Type     models.FileType    `yaml:"type"`
	Picture  models.PictureKind `yaml:"picture"`
	Content  string             `yaml:"content"`
	Admin    string             `yaml:"admin"` // Owner email; empty means the first admin
	Comments []CommentFixture   `yaml:"comments"`
}

type CommentFixture struct {
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

// DefaultFixture parses the embedded seed.yaml
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(defaultFixture)
}

// ParseFixture decodes a fixture document. Unknown keys are rejected.
func ParseFixture(data []byte) (*Fixture, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var fx Fixture
	if err := decoder.Decode(&fx); err != nil {
		return nil, fmt.Errorf("parse seed fixture: %w", err)
	}
	if len(fx.Admins) == 0 {
		return nil, fmt.Errorf("parse seed fixture: at least one admin is required")
	}
	return &fx, nil
}
