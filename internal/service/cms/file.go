package cms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cms/internal/config"
	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
	"cms/internal/domain/services"
	cmsSvc "cms/internal/domain/services/cms"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type fileService struct {
	fileRepo   cmsRepo.FileRepository
	folderRepo cmsRepo.FolderRepository
	adminRepo  cmsRepo.AdminRepository
	counters   cmsSvc.CounterService
	validator  *ResourceValidator
	authorizer services.ResourceAuthorizer
	logger     *slog.Logger
}

// NewFileService creates a new content item service
func NewFileService(
	fileRepo cmsRepo.FileRepository,
	folderRepo cmsRepo.FolderRepository,
	adminRepo cmsRepo.AdminRepository,
	counters cmsSvc.CounterService,
	validator *ResourceValidator,
	authorizer services.ResourceAuthorizer,
	logger *slog.Logger,
) cmsSvc.FileService {
	return &fileService{
		fileRepo:   fileRepo,
		folderRepo: folderRepo,
		adminRepo:  adminRepo,
		counters:   counters,
		validator:  validator,
		authorizer: authorizer,
		logger:     logger,
	}
}

// CreateFile creates a content item with both counters at zero
func (s *fileService) CreateFile(ctx context.Context, req *cmsSvc.FileRequest) (*models.File, error) {
	normalizeFileRequest(req)
	if err := validateFileRequest(req); err != nil {
		return nil, validationFailed(err)
	}
	if err := s.validator.ValidateFolder(ctx, req.FolderID); err != nil {
		return nil, err
	}

	file := &models.File{
		FolderID:     req.FolderID,
		AdminID:      req.AdminID,
		Picture:      req.Picture,
		Name:         req.Name,
		Content:      req.Content,
		ViewCount:    0,
		CommentCount: 0,
		Type:         req.Type,
		Status:       req.Status,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, err
	}

	s.refreshFolderCount(ctx, file.FolderID)

	s.logger.Info("file created",
		"id", file.ID,
		"folder_id", file.FolderID,
		"admin_id", file.AdminID,
		"type", file.Type,
	)

	return file, nil
}

// GetFile resolves an item by ID whatever its status and attaches its owner and folder
func (s *fileService) GetFile(ctx context.Context, id int64) (*models.FileView, error) {
	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &models.FileView{File: *file}

	view.Admin, err = s.adminRepo.GetByID(ctx, file.AdminID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if file.FolderID != models.RootFolderID {
		view.Folder, err = s.folderRepo.GetByID(ctx, file.FolderID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	return view, nil
}

// UpdateFile replaces the whole row of an item req.AdminID owns. Both
// counters go back to zero: an edit starts the item's history over.
func (s *fileService) UpdateFile(ctx context.Context, id int64, req *cmsSvc.FileRequest) (*models.File, error) {
	normalizeFileRequest(req)
	if err := validateFileRequest(req); err != nil {
		return nil, validationFailed(err)
	}

	existing, err := s.authorizer.CanModifyFile(ctx, req.AdminID, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateFolder(ctx, req.FolderID); err != nil {
		return nil, err
	}

	file := &models.File{
		ID:           id,
		FolderID:     req.FolderID,
		AdminID:      existing.AdminID,
		Picture:      req.Picture,
		Name:         req.Name,
		Content:      req.Content,
		ViewCount:    0,
		CommentCount: 0,
		Type:         req.Type,
		Status:       req.Status,
		CreatedAt:    existing.CreatedAt,
	}

	if err := s.fileRepo.Update(ctx, file); err != nil {
		return nil, err
	}

	s.refreshFolderCount(ctx, file.FolderID)
	if existing.FolderID != file.FolderID {
		s.refreshFolderCount(ctx, existing.FolderID)
	}

	s.logger.Info("file updated", "id", id, "folder_id", file.FolderID)
	return file, nil
}

// DeleteFile moves an item to the recycle bin
func (s *fileService) DeleteFile(ctx context.Context, id int64) error {
	return s.SetFileStatus(ctx, id, models.FileStatusHidden)
}

// RestoreFile takes an item back out of the recycle bin
func (s *fileService) RestoreFile(ctx context.Context, id int64) error {
	return s.SetFileStatus(ctx, id, models.FileStatusDisplay)
}

// SetFileStatus transitions an item between display and hidden
func (s *fileService) SetFileStatus(ctx context.Context, id int64, status models.FileStatus) error {
	var event string
	switch status {
	case models.FileStatusDisplay:
		event = "file restored"
	case models.FileStatusHidden:
		event = "file moved to recycle bin"
	default:
		return &domain.ValidationError{Message: fmt.Sprintf("unknown file status %q", status)}
	}

	file, err := s.fileRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.fileRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.refreshFolderCount(ctx, file.FolderID)

	s.logger.Info(event, "id", id, "folder_id", file.FolderID)
	return nil
}

// MoveImage reassigns one of adminID's items to folderID
func (s *fileService) MoveImage(ctx context.Context, folderID, fileID, adminID int64) error {
	if err := s.validator.ValidateFolder(ctx, folderID); err != nil {
		return err
	}

	file, err := s.authorizer.CanModifyFile(ctx, adminID, fileID)
	if err != nil {
		return err
	}

	moved, err := s.fileRepo.MoveToFolder(ctx, fileID, folderID, adminID)
	if err != nil {
		return err
	}
	if moved == 0 {
		return domain.NewNotFound("file", fileID)
	}

	s.refreshFolderCount(ctx, folderID)
	if file.FolderID != folderID {
		s.refreshFolderCount(ctx, file.FolderID)
	}

	s.logger.Info("file moved",
		"id", fileID,
		"from_folder_id", file.FolderID,
		"to_folder_id", folderID,
		"admin_id", adminID,
	)
	return nil
}

// ListByPicture lists display items of a type with one picture treatment
func (s *fileService) ListByPicture(ctx context.Context, fileType models.FileType, picture models.PictureKind) ([]models.File, error) {
	if !fileType.Valid() {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown file type %q", fileType)}
	}
	if !picture.Valid() {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown picture kind %q", picture)}
	}
	return s.fileRepo.ListByPicture(ctx, fileType, picture)
}

// refreshFolderCount keeps the folder's cached count in step with its items.
// A stale count is not worth failing the write that triggered it.
func (s *fileService) refreshFolderCount(ctx context.Context, folderID int64) {
	if folderID == models.RootFolderID {
		return
	}
	if _, err := s.counters.RecomputeFolderCount(ctx, folderID); err != nil {
		s.logger.Warn("failed to recompute folder count", "folder_id", folderID, "error", err)
	}
}

func normalizeFileRequest(req *cmsSvc.FileRequest) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Picture == "" {
		req.Picture = models.PictureNone
	}
	if req.Status == "" {
		req.Status = models.FileStatusDisplay
	}
}

func validateFileRequest(req *cmsSvc.FileRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.FolderID, validation.Min(int64(0))),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFileNameLength),
		),
		validation.Field(&req.Type, validation.Required, knownValue),
		validation.Field(&req.Status, knownValue),
		validation.Field(&req.Picture, knownValue),
	)
}
