package cms

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cms/internal/config"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
	cmsSvc "cms/internal/domain/services/cms"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type commentService struct {
	commentRepo cmsRepo.CommentRepository
	counters    cmsSvc.CounterService
	validator   *ResourceValidator
	logger      *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(
	commentRepo cmsRepo.CommentRepository,
	counters cmsSvc.CounterService,
	validator *ResourceValidator,
	logger *slog.Logger,
) cmsSvc.CommentService {
	return &commentService{
		commentRepo: commentRepo,
		counters:    counters,
		validator:   validator,
		logger:      logger,
	}
}

// AddComment stores a display comment and recounts the item's comments
func (s *commentService) AddComment(ctx context.Context, req *cmsSvc.CommentRequest) (*models.Comment, error) {
	req.Author = strings.TrimSpace(req.Author)
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Author, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Content, validation.Required, validation.Length(1, config.MaxCommentLength)),
	); err != nil {
		return nil, validationFailed(err)
	}

	if _, err := s.validator.ValidateFile(ctx, req.FileID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		FileID:    req.FileID,
		Author:    req.Author,
		Content:   req.Content,
		Status:    models.CommentStatusDisplay,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if _, err := s.counters.RecomputeCommentCount(ctx, comment.FileID); err != nil {
		return nil, err
	}

	s.logger.Info("comment added", "id", comment.ID, "file_id", comment.FileID)
	return comment, nil
}

// HideComment hides a comment and recounts its item's comments
func (s *commentService) HideComment(ctx context.Context, id int64) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.commentRepo.UpdateStatus(ctx, id, models.CommentStatusHidden); err != nil {
		return err
	}

	if _, err := s.counters.RecomputeCommentCount(ctx, comment.FileID); err != nil {
		return err
	}

	s.logger.Info("comment hidden", "id", id, "file_id", comment.FileID)
	return nil
}
