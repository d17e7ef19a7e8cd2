package handler

import (
	"log/slog"
	"net/http"

	cmsSvc "cms/internal/domain/services/cms"
	"cms/internal/httputil"
)

// ImageHandler serves the calling admin's own gallery
type ImageHandler struct {
	fileService cmsSvc.FileService
	pagination  cmsSvc.PaginationService
	logger      *slog.Logger
}

// NewImageHandler creates a new image handler
func NewImageHandler(fileService cmsSvc.FileService, pagination cmsSvc.PaginationService, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		fileService: fileService,
		pagination:  pagination,
		logger:      logger,
	}
}

// ListMyImages pages through the admin's displayed items of one type
// GET /api/admins/me/images?type=&page=
func (h *ImageHandler) ListMyImages(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	fileType, err := requiredFileType(r)
	if err != nil {
		handleError(w, err)
		return
	}

	page, err := h.pagination.AdminImagePage(r.Context(), adminID, fileType, httputil.ParsePage(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}

type moveImageRequest struct {
	FolderID int64 `json:"folder_id"`
}

// MoveImage reassigns one of the admin's items to another folder
// POST /api/admins/me/images/{id}/move
func (h *ImageHandler) MoveImage(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	var req moveImageRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	if err := h.fileService.MoveImage(r.Context(), req.FolderID, id, adminID); err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("image moved", "file_id", id, "folder_id", req.FolderID, "admin_id", adminID)
	httputil.RespondNoContent(w)
}
