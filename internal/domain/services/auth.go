package services

import (
	"context"

	models "cms/internal/domain/models/cms"
)

// ResourceAuthorizer checks if an admin can act on resources.
// Current implementation: ownership-based (admin owns the item).
//
// Services call the authorizer before mutating a resource. This separates
// authorization (who can act) from identification (which resource).
type ResourceAuthorizer interface {
	// CanModifyFile returns the item when adminID owns it.
	// Returns domain.ErrForbidden for another admin's item.
	CanModifyFile(ctx context.Context, adminID, fileID int64) (*models.File, error)
}
