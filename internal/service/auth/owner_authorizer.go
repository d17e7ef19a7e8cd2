package auth

import (
	"context"
	"fmt"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
	"cms/internal/domain/services"
)

// OwnerBasedAuthorizer implements ResourceAuthorizer using ownership checks.
// An admin can modify a content item if they are recorded as its owner.
type OwnerBasedAuthorizer struct {
	fileRepo cmsRepo.FileRepository
}

// NewOwnerBasedAuthorizer creates a new ownership-based authorizer
func NewOwnerBasedAuthorizer(fileRepo cmsRepo.FileRepository) services.ResourceAuthorizer {
	return &OwnerBasedAuthorizer{fileRepo: fileRepo}
}

// CanModifyFile checks if adminID owns the item
func (a *OwnerBasedAuthorizer) CanModifyFile(ctx context.Context, adminID, fileID int64) (*models.File, error) {
	file, err := a.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("get file for auth: %w", err)
	}

	if file.AdminID != adminID {
		return nil, fmt.Errorf("access denied to file %d: %w", fileID, domain.ErrForbidden)
	}
	return file, nil
}
