package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"cms/internal/config"
	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsSvc "cms/internal/domain/services/cms"
	"cms/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService cmsSvc.FolderService
	pagination    cmsSvc.PaginationService
	cfg           *config.Config
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(
	folderService cmsSvc.FolderService,
	pagination cmsSvc.PaginationService,
	cfg *config.Config,
	logger *slog.Logger,
) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		pagination:    pagination,
		cfg:           cfg,
		logger:        logger,
	}
}

// CreateFolder creates a new folder
// POST /api/folders
// Returns 201 if created, 409 with the existing folder if the short name is taken
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req cmsSvc.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	folder, err := h.folderService.CreateFolder(r.Context(), &req)
	if err != nil {
		HandleCreateConflict(w, err, func(conflict *domain.ConflictError) (*models.Folder, error) {
			id, parseErr := strconv.ParseInt(conflict.ResourceID, 10, 64)
			if parseErr != nil {
				return nil, parseErr
			}
			return h.folderService.GetFolder(r.Context(), id)
		})
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// GetFolder retrieves a folder by ID
// GET /api/folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	folder, err := h.folderService.GetFolder(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// GetFolderByShortName resolves a folder from its URL name
// GET /api/folders/by-name?short_name=
func (h *FolderHandler) GetFolderByShortName(w http.ResponseWriter, r *http.Request) {
	shortName := r.URL.Query().Get("short_name")
	if shortName == "" {
		httputil.RespondError(w, http.StatusBadRequest, "short_name is required")
		return
	}

	folder, err := h.folderService.GetFolderByShortName(r.Context(), shortName)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// ListFolders returns a page of folders in id order
// GET /api/folders?page=&rows=
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	p := httputil.ParsePagination(r, h.cfg.DefaultPageRows, config.MaxPageRows)

	page, err := h.folderService.ListFolderPage(r.Context(), p.Page, p.Rows)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}

// UpdateFolder updates a folder, moving it when parent_id is set
// PATCH /api/folders/{id}
func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	var req cmsSvc.UpdateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	folder, err := h.folderService.UpdateFolder(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// DeleteFolder removes a folder row. Its content stays where it is.
// DELETE /api/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.folderService.DeleteFolder(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// ListFolderFiles pages through the display items of a folder
// GET /api/folders/{id}/files?page=&rows=&type=
func (h *FolderHandler) ListFolderFiles(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	fileType, err := optionalFileType(r)
	if err != nil {
		handleError(w, err)
		return
	}

	p := httputil.ParsePagination(r, h.cfg.DefaultPageRows, config.MaxPageRows)

	page, err := h.pagination.FolderPage(r.Context(), id, fileType, p.Page, p.Rows)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}

// optionalFileType reads ?type=; absent means any type
func optionalFileType(r *http.Request) (*models.FileType, error) {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		return nil, nil
	}
	fileType, err := models.ParseFileType(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return &fileType, nil
}

// requiredFileType reads ?type= and rejects a missing or unknown value
func requiredFileType(r *http.Request) (models.FileType, error) {
	fileType, err := optionalFileType(r)
	if err != nil {
		return "", err
	}
	if fileType == nil {
		return "", fmt.Errorf("%w: type is required", domain.ErrValidation)
	}
	return *fileType, nil
}
