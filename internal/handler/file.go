package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"cms/internal/domain"
	models "cms/internal/domain/models/cms"
	cmsSvc "cms/internal/domain/services/cms"
	"cms/internal/httputil"
)

// FileHandler handles content item HTTP requests
type FileHandler struct {
	fileService cmsSvc.FileService
	pagination  cmsSvc.PaginationService
	counters    cmsSvc.CounterService
	logger      *slog.Logger
}

// NewFileHandler creates a new content item handler
func NewFileHandler(
	fileService cmsSvc.FileService,
	pagination cmsSvc.PaginationService,
	counters cmsSvc.CounterService,
	logger *slog.Logger,
) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		pagination:  pagination,
		counters:    counters,
		logger:      logger,
	}
}

// CreateFile creates a content item owned by the calling admin
// POST /api/files
func (h *FileHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	var req cmsSvc.FileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}
	req.AdminID = adminID

	file, err := h.fileService.CreateFile(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, file)
}

// GetFile returns a displayed item and counts the view
// GET /api/files/{id}
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	view, err := h.fileService.GetFile(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	// Recycle-bin items are only reachable through the admin listings
	if view.Status != models.FileStatusDisplay {
		handleError(w, domain.NewNotFound("file", id))
		return
	}

	viewCount, err := h.counters.IncrementView(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	view.ViewCount = viewCount

	httputil.RespondJSON(w, http.StatusOK, view)
}

// UpdateFile replaces every writable column of an item
// PUT /api/files/{id}
func (h *FileHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireAdminID(w, r)
	if !ok {
		return
	}

	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	var req cmsSvc.FileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}
	req.AdminID = adminID

	file, err := h.fileService.UpdateFile(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// DeleteFile moves an item to the recycle bin
// DELETE /api/files/{id}
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.fileService.DeleteFile(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// RestoreFile takes an item out of the recycle bin
// POST /api/files/{id}/restore
func (h *FileHandler) RestoreFile(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.fileService.RestoreFile(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// recordViewRequest carries the view count the client last saw
type recordViewRequest struct {
	Known int `json:"known"`
}

// RecordView stores known+1 as the view count without reading the row
// POST /api/files/{id}/views
func (h *FileHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	var req recordViewRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}
	if req.Known < 0 {
		handleError(w, fmt.Errorf("%w: known must not be negative", domain.ErrValidation))
		return
	}

	if err := h.counters.RecordView(r.Context(), id, req.Known); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// RecountComments recomputes the cached comment count
// POST /api/files/{id}/comments/recount
func (h *FileHandler) RecountComments(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	count, err := h.counters.RecomputeCommentCount(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]int{"comment_count": count})
}

// ListFiles is the admin listing of one type and status
// GET /api/files?type=&status=&page=
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	fileType, err := requiredFileType(r)
	if err != nil {
		handleError(w, err)
		return
	}

	status := models.FileStatusDisplay
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err = models.ParseFileStatus(raw)
		if err != nil {
			handleError(w, fmt.Errorf("%w: %v", domain.ErrValidation, err))
			return
		}
	}

	page, err := h.pagination.TypePage(r.Context(), fileType, status, httputil.ParsePage(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}

// ListByPicture lists displayed items with a picture treatment
// GET /api/files/pictures?type=&picture=
func (h *FileHandler) ListByPicture(w http.ResponseWriter, r *http.Request) {
	fileType, err := requiredFileType(r)
	if err != nil {
		handleError(w, err)
		return
	}

	picture, err := models.ParsePictureKind(r.URL.Query().Get("picture"))
	if err != nil {
		handleError(w, fmt.Errorf("%w: %v", domain.ErrValidation, err))
		return
	}

	files, err := h.fileService.ListByPicture(r.Context(), fileType, picture)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, files)
}
