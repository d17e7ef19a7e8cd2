package cms

import (
	"context"

	"cms/internal/domain/models/cms"
)

// AdminRepository defines data access operations for admins
type AdminRepository interface {
	Create(ctx context.Context, admin *cms.Admin) error
	GetByID(ctx context.Context, id int64) (*cms.Admin, error)
}
