package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"cms/internal/domain"
)

// ParseJSON decodes JSON from the request body into dest.
// Bodies are capped at 10MB; article content is the largest field.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("%w: invalid JSON: %v", domain.ErrValidation, err)
	}

	return nil
}

// PathID parses a positive integer path parameter
func PathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrValidation, name, raw)
	}
	return id, nil
}

// Pagination is a page request after clamping
type Pagination struct {
	Page int
	Rows int
}

// ParsePagination reads ?page= and ?rows=. Missing or malformed values fall
// back to page 1 and defaultRows; rows is capped at maxRows.
func ParsePagination(r *http.Request, defaultRows, maxRows int) Pagination {
	page := ParsePage(r)
	rows := parseIntDefault(r.URL.Query().Get("rows"), defaultRows)

	if rows < 1 {
		rows = defaultRows
	}
	if rows > maxRows {
		rows = maxRows
	}

	return Pagination{Page: page, Rows: rows}
}

// ParsePage reads ?page= for listings with a fixed row size. Values below 1 become 1.
func ParsePage(r *http.Request) int {
	page := parseIntDefault(r.URL.Query().Get("page"), 1)
	if page < 1 {
		return 1
	}
	return page
}

func parseIntDefault(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
