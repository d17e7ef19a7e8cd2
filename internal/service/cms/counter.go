package cms

import (
	"context"
	"log/slog"

	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
	cmsSvc "cms/internal/domain/services/cms"
)

type counterService struct {
	fileRepo    cmsRepo.FileRepository
	folderRepo  cmsRepo.FolderRepository
	commentRepo cmsRepo.CommentRepository
	logger      *slog.Logger
}

// NewCounterService creates a new counter service
func NewCounterService(
	fileRepo cmsRepo.FileRepository,
	folderRepo cmsRepo.FolderRepository,
	commentRepo cmsRepo.CommentRepository,
	logger *slog.Logger,
) cmsSvc.CounterService {
	return &counterService{
		fileRepo:    fileRepo,
		folderRepo:  folderRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// RecordView stores previouslyKnown+1 without reading the row.
// Concurrent callers holding the same stale value overwrite each other and
// one view is lost. IncrementView does not have this problem.
func (s *counterService) RecordView(ctx context.Context, id int64, previouslyKnown int) error {
	return s.fileRepo.UpdateViewCount(ctx, id, previouslyKnown+1)
}

// IncrementView adds one view in a single store statement and returns the new count
func (s *counterService) IncrementView(ctx context.Context, id int64) (int, error) {
	return s.fileRepo.IncrementViewCount(ctx, id)
}

// RecomputeCommentCount overwrites the cached comment count with the live
// number of display comments. Safe to repeat.
func (s *counterService) RecomputeCommentCount(ctx context.Context, id int64) (int, error) {
	count, err := s.commentRepo.CountByParent(ctx, id, models.CommentStatusDisplay)
	if err != nil {
		return 0, err
	}

	if err := s.fileRepo.UpdateCommentCount(ctx, id, count); err != nil {
		return 0, err
	}

	s.logger.Debug("comment count recomputed", "file_id", id, "count", count)
	return count, nil
}

// RecomputeFolderCount overwrites a folder's content count with the live
// number of display items in it
func (s *counterService) RecomputeFolderCount(ctx context.Context, folderID int64) (int, error) {
	count, err := s.fileRepo.Count(ctx, models.FileFilter{
		FolderID: &folderID,
		Status:   models.FileStatusDisplay,
	})
	if err != nil {
		return 0, err
	}

	if err := s.folderRepo.UpdateCount(ctx, folderID, count); err != nil {
		return 0, err
	}

	s.logger.Debug("folder count recomputed", "folder_id", folderID, "count", count)
	return count, nil
}
