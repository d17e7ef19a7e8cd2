package handler

import "net/http"

// Handlers groups every HTTP handler the server mounts
type Handlers struct {
	Health  *HealthHandler
	Tree    *TreeHandler
	Folder  *FolderHandler
	File    *FileHandler
	Image   *ImageHandler
	Comment *CommentHandler
}

// RegisterRoutes mounts public routes as-is and wraps admin routes with requireAdmin
func RegisterRoutes(mux *http.ServeMux, h *Handlers, requireAdmin func(http.Handler) http.Handler) {
	admin := func(fn http.HandlerFunc) http.Handler {
		return requireAdmin(fn)
	}

	// Health check
	mux.HandleFunc("GET /health", h.Health.Health)

	// Folder tree
	mux.HandleFunc("GET /api/folders/tree", h.Tree.GetTree)
	mux.HandleFunc("GET /api/folders/{id}/tree", h.Tree.GetSubtree)

	// Folder routes
	mux.HandleFunc("GET /api/folders", h.Folder.ListFolders)
	mux.HandleFunc("GET /api/folders/by-name", h.Folder.GetFolderByShortName) // Must come before {id} route
	mux.HandleFunc("GET /api/folders/{id}", h.Folder.GetFolder)
	mux.HandleFunc("GET /api/folders/{id}/files", h.Folder.ListFolderFiles)
	mux.Handle("POST /api/folders", admin(h.Folder.CreateFolder))
	mux.Handle("PATCH /api/folders/{id}", admin(h.Folder.UpdateFolder))
	mux.Handle("DELETE /api/folders/{id}", admin(h.Folder.DeleteFolder))

	// Content routes
	mux.HandleFunc("GET /api/files/pictures", h.File.ListByPicture)
	mux.HandleFunc("GET /api/files/{id}", h.File.GetFile)
	mux.HandleFunc("POST /api/files/{id}/views", h.File.RecordView)
	mux.HandleFunc("POST /api/files/{id}/comments", h.Comment.AddComment)
	mux.Handle("GET /api/files", admin(h.File.ListFiles))
	mux.Handle("POST /api/files", admin(h.File.CreateFile))
	mux.Handle("PUT /api/files/{id}", admin(h.File.UpdateFile))
	mux.Handle("DELETE /api/files/{id}", admin(h.File.DeleteFile))
	mux.Handle("POST /api/files/{id}/restore", admin(h.File.RestoreFile))
	mux.Handle("POST /api/files/{id}/comments/recount", admin(h.File.RecountComments))

	// Comment moderation
	mux.Handle("POST /api/comments/{id}/hide", admin(h.Comment.HideComment))

	// Admin gallery
	mux.Handle("GET /api/admins/me/images", admin(h.Image.ListMyImages))
	mux.Handle("POST /api/admins/me/images/{id}/move", admin(h.Image.MoveImage))
}
