package cms

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"cms/internal/config"
	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	"cms/internal/domain/repositories"
	cmsRepo "cms/internal/domain/repositories/cms"
	cmsSvc "cms/internal/domain/services/cms"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var shortNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

type folderService struct {
	folderRepo cmsRepo.FolderRepository
	txManager  repositories.TransactionManager
	cfg        *config.Config
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo cmsRepo.FolderRepository,
	txManager repositories.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) cmsSvc.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		txManager:  txManager,
		cfg:        cfg,
		logger:     logger,
	}
}

// CreateFolder creates a new folder under req.ParentID (0 = root)
func (s *folderService) CreateFolder(ctx context.Context, req *cmsSvc.CreateFolderRequest) (*models.Folder, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.ShortName = strings.TrimSpace(req.ShortName)
	if req.Status == "" {
		req.Status = models.FolderStatusActive
	}
	if req.Type == "" {
		req.Type = models.FolderTypeArticle
	}
	if req.Rank == "" {
		req.Rank = models.FolderRankNormal
	}

	if err := s.validateCreateRequest(req); err != nil {
		return nil, validationFailed(err)
	}

	// Parent is resolved first: the level is fixed at creation
	var parent *models.Folder
	if req.ParentID != models.RootFolderID {
		p, err := s.folderRepo.GetByID(ctx, req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("parent folder: %w", err)
		}
		parent = p
	}

	folder := &models.Folder{
		ParentID:  req.ParentID,
		Name:      req.Name,
		ShortName: req.ShortName,
		Level:     models.LevelUnder(parent),
		Sort:      1,
		Status:    req.Status,
		Type:      req.Type,
		Rank:      req.Rank,
		Count:     0,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"short_name", folder.ShortName,
		"parent_id", folder.ParentID,
		"level", folder.Level,
	)

	return folder, nil
}

// GetFolder retrieves a folder by ID
func (s *folderService) GetFolder(ctx context.Context, id int64) (*models.Folder, error) {
	return s.folderRepo.GetByID(ctx, id)
}

// GetFolderByShortName retrieves a folder by its short name
func (s *folderService) GetFolderByShortName(ctx context.Context, shortName string) (*models.Folder, error) {
	return s.folderRepo.GetByShortName(ctx, shortName)
}

// UpdateFolder updates a folder in place. Moving it to another parent
// recomputes its level and the levels of its whole subtree in one transaction.
func (s *folderService) UpdateFolder(ctx context.Context, id int64, req *cmsSvc.UpdateFolderRequest) (*models.Folder, error) {
	if req.Name != nil {
		*req.Name = strings.TrimSpace(*req.Name)
	}
	if req.ShortName != nil {
		*req.ShortName = strings.TrimSpace(*req.ShortName)
	}
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, validationFailed(err)
	}

	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		folder.Name = *req.Name
	}
	if req.ShortName != nil {
		folder.ShortName = *req.ShortName
	}
	if req.Status != nil {
		folder.Status = *req.Status
	}
	if req.Type != nil {
		folder.Type = *req.Type
	}
	if req.Rank != nil {
		folder.Rank = *req.Rank
	}
	if req.Sort != nil {
		folder.Sort = *req.Sort
	}

	moved := req.ParentID != nil && *req.ParentID != folder.ParentID
	if moved {
		newParentID := *req.ParentID
		var parent *models.Folder
		if newParentID != models.RootFolderID {
			if err := s.validateNoCircularReference(ctx, id, newParentID); err != nil {
				return nil, err
			}
			parent, err = s.folderRepo.GetByID(ctx, newParentID)
			if err != nil {
				return nil, fmt.Errorf("parent folder: %w", err)
			}
		}
		folder.ParentID = newParentID
		folder.Level = models.LevelUnder(parent)
		s.logger.Debug("moving folder", "folder_id", id, "new_parent_id", newParentID)
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.folderRepo.Update(txCtx, folder); err != nil {
			return err
		}
		if moved {
			return s.relevelSubtree(txCtx, folder)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder updated",
		"id", folder.ID,
		"short_name", folder.ShortName,
		"parent_id", folder.ParentID,
		"level", folder.Level,
	)

	return folder, nil
}

// relevelSubtree rewrites descendant levels after root moved
func (s *folderService) relevelSubtree(ctx context.Context, root *models.Folder) error {
	type pending struct {
		id    int64
		level int
	}
	stack := []pending{{id: root.ID, level: root.Level}}
	seen := map[int64]bool{}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[top.id] {
			return &domain.ValidationError{Message: fmt.Sprintf("subtree of folder %d contains a cycle", root.ID)}
		}
		seen[top.id] = true

		children, err := s.folderRepo.ListChildren(ctx, top.id)
		if err != nil {
			return fmt.Errorf("list children of folder %d: %w", top.id, err)
		}
		for _, child := range children {
			level := top.level + 1
			if child.Level != level {
				if err := s.folderRepo.UpdateLevel(ctx, child.ID, level); err != nil {
					return err
				}
			}
			stack = append(stack, pending{id: child.ID, level: level})
		}
	}
	return nil
}

// DeleteFolder removes the folder row. Child folders and content keep their
// parent id and are left to the admin workflow.
func (s *folderService) DeleteFolder(ctx context.Context, id int64) error {
	if err := s.folderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("folder deleted", "id", id)
	return nil
}

// ListFolders returns every folder in id order
func (s *folderService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	return s.folderRepo.ListAll(ctx)
}

// ListFolderPage returns one page of the flat folder list
func (s *folderService) ListFolderPage(ctx context.Context, pageNum, rows int) (*models.Page[models.Folder], error) {
	page := models.NewPage[models.Folder](pageNum, rows)
	page.URL = s.cfg.BasePath + "/admin/folder/page?"

	count, err := s.folderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	page.Count = count

	folders, err := s.folderRepo.ListPage(ctx, page.Offset(), rows)
	if err != nil {
		return nil, err
	}
	page.Items = folders

	return page, nil
}

func (s *folderService) validateCreateRequest(req *cmsSvc.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ParentID, validation.Min(int64(0))),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
		),
		validation.Field(&req.ShortName,
			validation.Required,
			validation.Length(1, config.MaxShortNameLength),
			validation.Match(shortNamePattern).Error("short name may only contain letters, digits, '-' and '_'"),
		),
		validation.Field(&req.Status, knownValue),
		validation.Field(&req.Type, knownValue),
		validation.Field(&req.Rank, knownValue),
	)
}

func (s *folderService) validateUpdateRequest(req *cmsSvc.UpdateFolderRequest) error {
	if req.ParentID == nil && req.Name == nil && req.ShortName == nil &&
		req.Status == nil && req.Type == nil && req.Rank == nil && req.Sort == nil {
		return fmt.Errorf("at least one field must be provided")
	}

	return validation.ValidateStruct(req,
		validation.Field(&req.ParentID, validation.Min(int64(0))),
		validation.Field(&req.Name,
			validation.NilOrNotEmpty,
			validation.Length(1, config.MaxFolderNameLength),
		),
		validation.Field(&req.ShortName,
			validation.NilOrNotEmpty,
			validation.Length(1, config.MaxShortNameLength),
			validation.Match(shortNamePattern).Error("short name may only contain letters, digits, '-' and '_'"),
		),
		validation.Field(&req.Status, knownValue),
		validation.Field(&req.Type, knownValue),
		validation.Field(&req.Rank, knownValue),
	)
}

// validateNoCircularReference ensures moving a folder won't create circular references
func (s *folderService) validateNoCircularReference(ctx context.Context, folderID, newParentID int64) error {
	if folderID == newParentID {
		return fmt.Errorf("%w: cannot move folder to be its own parent", domain.ErrValidation)
	}

	currentID := newParentID
	for steps := 0; steps <= s.cfg.FolderMaxDepth; steps++ {
		parent, err := s.folderRepo.GetByID(ctx, currentID)
		if err != nil {
			return fmt.Errorf("parent folder: %w", err)
		}

		if parent.IsRoot() {
			return nil
		}

		if parent.ParentID == folderID {
			return fmt.Errorf("%w: cannot move folder to be a child of its own descendant", domain.ErrValidation)
		}

		currentID = parent.ParentID
	}

	return fmt.Errorf("%w: parent chain of folder %d is deeper than %d levels", domain.ErrValidation, newParentID, s.cfg.FolderMaxDepth)
}
