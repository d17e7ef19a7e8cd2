package cms

import (
	"context"
	"errors"
	"fmt"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ResourceValidator checks that referenced parent resources exist
// before a child resource is written
type ResourceValidator struct {
	folderRepo cmsRepo.FolderRepository
	fileRepo   cmsRepo.FileRepository
}

// NewResourceValidator creates a new resource validator
func NewResourceValidator(folderRepo cmsRepo.FolderRepository, fileRepo cmsRepo.FileRepository) *ResourceValidator {
	return &ResourceValidator{
		folderRepo: folderRepo,
		fileRepo:   fileRepo,
	}
}

// ValidateFolder ensures a folder exists.
// The root sentinel is always valid.
func (v *ResourceValidator) ValidateFolder(ctx context.Context, folderID int64) error {
	if folderID == models.RootFolderID {
		return nil
	}
	if _, err := v.folderRepo.GetByID(ctx, folderID); err != nil {
		return fmt.Errorf("invalid folder: %w", err)
	}
	return nil
}

// ValidateFile ensures a content item exists (any status)
func (v *ResourceValidator) ValidateFile(ctx context.Context, fileID int64) (*models.File, error) {
	file, err := v.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("invalid file: %w", err)
	}
	return file, nil
}

// knownValue is an ozzo rule for the closed enum types
var knownValue = validation.By(func(value interface{}) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	enum, ok := value.(interface{ Valid() bool })
	if !ok {
		return nil
	}
	if !enum.Valid() {
		return errors.New("must be a known value")
	}
	return nil
})

// validationFailed wraps an ozzo error so handlers map it to 400
func validationFailed(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
