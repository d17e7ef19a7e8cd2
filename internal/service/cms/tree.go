package cms

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
	cmsSvc "cms/internal/domain/services/cms"
)

// treeService implements the TreeService interface
type treeService struct {
	folderRepo cmsRepo.FolderRepository
	maxDepth   int
	logger     *slog.Logger
}

// NewTreeService creates a new tree service.
// maxDepth bounds how many levels below the starting point are walked.
func NewTreeService(
	folderRepo cmsRepo.FolderRepository,
	maxDepth int,
	logger *slog.Logger,
) cmsSvc.TreeService {
	return &treeService{
		folderRepo: folderRepo,
		maxDepth:   maxDepth,
		logger:     logger,
	}
}

// BuildTree flattens the whole folder table into navigation order
func (s *treeService) BuildTree(ctx context.Context) ([]models.FolderNode, error) {
	nodes, err := s.walk(ctx, models.RootFolderID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder tree built", "folder_count", len(nodes))
	return nodes, nil
}

// BuildSubtree flattens the descendants of rootID. rootID must exist.
func (s *treeService) BuildSubtree(ctx context.Context, rootID int64) ([]models.FolderNode, error) {
	if rootID != models.RootFolderID {
		if _, err := s.folderRepo.GetByID(ctx, rootID); err != nil {
			return nil, err
		}
	}

	nodes, err := s.walk(ctx, rootID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("folder subtree built", "root_id", rootID, "folder_count", len(nodes))
	return nodes, nil
}

type treeFrame struct {
	folder models.Folder
	depth  int
}

// walk is a pre-order depth-first traversal driven by an explicit stack.
// Each sibling group is sorted, then pushed in reverse so the first sibling
// is popped first and its whole subtree is emitted before the next sibling.
func (s *treeService) walk(ctx context.Context, rootID int64) ([]models.FolderNode, error) {
	nodes := []models.FolderNode{}

	stack, err := s.childFrames(ctx, rootID, 1)
	if err != nil {
		return nil, err
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes = append(nodes, models.FolderNode{Folder: top.folder})

		children, err := s.childFrames(ctx, top.folder.ID, top.depth+1)
		if err != nil {
			return nil, err
		}
		if len(children) > 0 && top.depth+1 > s.maxDepth {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("folder tree under %d is deeper than %d levels (or its parent chain is cyclic)", rootID, s.maxDepth),
			}
		}
		stack = append(stack, children...)
	}

	return nodes, nil
}

// childFrames lists, orders and reverses one sibling group for the stack
func (s *treeService) childFrames(ctx context.Context, parentID int64, depth int) ([]treeFrame, error) {
	children, err := s.folderRepo.ListChildren(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list children of folder %d: %w", parentID, err)
	}

	SortSiblings(children)
	slices.Reverse(children)

	frames := make([]treeFrame, len(children))
	for i, child := range children {
		frames[i] = treeFrame{folder: child, depth: depth}
	}
	return frames, nil
}
