package cms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cms/internal/config"
	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsRepo "cms/internal/domain/repositories/cms"
	cmsSvc "cms/internal/domain/services/cms"
)

type paginationService struct {
	fileRepo   cmsRepo.FileRepository
	folderRepo cmsRepo.FolderRepository
	adminRepo  cmsRepo.AdminRepository
	cfg        *config.Config
	logger     *slog.Logger
}

// NewPaginationService creates a new pagination service
func NewPaginationService(
	fileRepo cmsRepo.FileRepository,
	folderRepo cmsRepo.FolderRepository,
	adminRepo cmsRepo.AdminRepository,
	cfg *config.Config,
	logger *slog.Logger,
) cmsSvc.PaginationService {
	return &paginationService{
		fileRepo:   fileRepo,
		folderRepo: folderRepo,
		adminRepo:  adminRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

// Paginate computes one page of items matching filter.
//
// pageNum must be >= 1; it is not clamped here. Count and slice are two
// separate reads, so a concurrent write can make them disagree.
func (s *paginationService) Paginate(ctx context.Context, filter models.FileFilter, pageNum, rows int) (*models.Page[models.FileView], error) {
	page := models.NewPage[models.FileView](pageNum, rows)

	count, err := s.fileRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count files: %w", err)
	}
	page.Count = count

	files, err := s.fileRepo.List(ctx, filter, page.Offset(), rows)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	// One admin and one folder lookup per item, uncached
	for _, file := range files {
		view, err := s.enrich(ctx, file)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, *view)
	}

	page.URL, err = s.folderURL(ctx, filter.FolderID)
	if err != nil {
		return nil, err
	}

	return page, nil
}

// FolderPage lists the display items of one folder, optionally of one type
func (s *paginationService) FolderPage(ctx context.Context, folderID int64, fileType *models.FileType, pageNum, rows int) (*models.Page[models.FileView], error) {
	return s.Paginate(ctx, models.FileFilter{
		FolderID: &folderID,
		Type:     fileType,
		Status:   models.FileStatusDisplay,
	}, pageNum, rows)
}

// TypePage is the admin listing of one type in one status
func (s *paginationService) TypePage(ctx context.Context, fileType models.FileType, status models.FileStatus, pageNum int) (*models.Page[models.FileView], error) {
	page, err := s.Paginate(ctx, models.FileFilter{
		Type:   &fileType,
		Status: status,
	}, pageNum, s.cfg.AdminPageRows)
	if err != nil {
		return nil, err
	}

	page.URL = fmt.Sprintf("%s/admin/file/page?status=%s&type=%s&", s.cfg.BasePath, status, fileType)
	return page, nil
}

// AdminImagePage lists the display items of one type owned by adminID
func (s *paginationService) AdminImagePage(ctx context.Context, adminID int64, fileType models.FileType, pageNum int) (*models.Page[models.FileView], error) {
	page, err := s.Paginate(ctx, models.FileFilter{
		AdminID: &adminID,
		Type:    &fileType,
		Status:  models.FileStatusDisplay,
	}, pageNum, s.cfg.ImagePageRows)
	if err != nil {
		return nil, err
	}

	page.URL = ""
	return page, nil
}

// enrich attaches the owning admin and folder. A reference whose row no
// longer exists is left nil; any other store error fails the page.
func (s *paginationService) enrich(ctx context.Context, file models.File) (*models.FileView, error) {
	view := &models.FileView{File: file}

	admin, err := s.adminRepo.GetByID(ctx, file.AdminID)
	switch {
	case err == nil:
		view.Admin = admin
	case errors.Is(err, domain.ErrNotFound):
		s.logger.Debug("file owner missing", "file_id", file.ID, "admin_id", file.AdminID)
	default:
		return nil, fmt.Errorf("resolve admin of file %d: %w", file.ID, err)
	}

	if file.FolderID == models.RootFolderID {
		return view, nil
	}

	folder, err := s.folderRepo.GetByID(ctx, file.FolderID)
	switch {
	case err == nil:
		view.Folder = folder
	case errors.Is(err, domain.ErrNotFound):
		s.logger.Debug("file folder missing", "file_id", file.ID, "folder_id", file.FolderID)
	default:
		return nil, fmt.Errorf("resolve folder of file %d: %w", file.ID, err)
	}

	return view, nil
}

// folderURL is "<base>/<short name>?" when the folder resolves, "<base>/?" otherwise
func (s *paginationService) folderURL(ctx context.Context, folderID *int64) (string, error) {
	fallback := s.cfg.BasePath + "/?"
	if folderID == nil || *folderID == models.RootFolderID {
		return fallback, nil
	}

	folder, err := s.folderRepo.GetByID(ctx, *folderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fallback, nil
		}
		return "", fmt.Errorf("resolve folder %d: %w", *folderID, err)
	}
	return s.cfg.BasePath + "/" + folder.ShortName + "?", nil
}
