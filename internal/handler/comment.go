package handler

import (
	"log/slog"
	"net/http"

	cmsSvc "cms/internal/domain/services/cms"
	"cms/internal/httputil"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	commentService cmsSvc.CommentService
	logger         *slog.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService cmsSvc.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// AddComment posts a visitor comment on an item
// POST /api/files/{id}/comments
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	fileID, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	var req cmsSvc.CommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		handleError(w, err)
		return
	}
	req.FileID = fileID

	comment, err := h.commentService.AddComment(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, comment)
}

// HideComment takes a comment out of the public count
// POST /api/comments/{id}/hide
func (h *CommentHandler) HideComment(w http.ResponseWriter, r *http.Request) {
	id, err := httputil.PathID(r, "id")
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.commentService.HideComment(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}
