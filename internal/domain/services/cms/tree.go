package cms

import (
	"context"

	"cms/internal/domain/models/cms"
)

// TreeService builds the flattened navigation tree
type TreeService interface {
	// BuildTree walks every folder from the root sentinel in pre-order
	BuildTree(ctx context.Context) ([]cms.FolderNode, error)

	// BuildSubtree walks the descendants of rootID in pre-order (rootID itself excluded)
	BuildSubtree(ctx context.Context, rootID int64) ([]cms.FolderNode, error)
}
