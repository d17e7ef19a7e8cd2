package handler

import (
	"errors"
	"net/http"

	"cms/internal/domain"
	"cms/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var conflictErr *domain.ConflictError
	var notFoundErr *domain.NotFoundError

	switch {
	case errors.As(err, &notFoundErr):
		httputil.RespondErrorWithExtras(w, http.StatusNotFound, err.Error(), map[string]interface{}{
			"resource":   notFoundErr.Resource,
			"identifier": notFoundErr.Identifier,
		})
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &conflictErr):
		extras := map[string]interface{}{"resource_type": conflictErr.ResourceType}
		if conflictErr.ResourceID != "" {
			extras["resource_id"] = conflictErr.ResourceID
		}
		httputil.RespondErrorWithExtras(w, http.StatusConflict, conflictErr.Error(), extras)
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// HandleCreateConflict handles conflicts during creation by returning the existing resource with 409
// If the error is a ConflictError, it calls fetchFn to retrieve the existing resource
func HandleCreateConflict[T any](w http.ResponseWriter, err error, fetchFn func(conflict *domain.ConflictError) (*T, error)) {
	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) && conflictErr.ResourceID != "" {
		existing, fetchErr := fetchFn(conflictErr)
		if fetchErr != nil {
			// The conflicting row vanished between insert and lookup
			handleError(w, err)
			return
		}

		httputil.RespondJSON(w, http.StatusConflict, existing)
		return
	}

	handleError(w, err)
}

// requireAdminID reads the admin set by the auth middleware. Routes behind
// RequireAdmin always have one; a zero means the route was wired without it.
func requireAdminID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	adminID := httputil.GetAdminID(r)
	if adminID == 0 {
		httputil.RespondError(w, http.StatusUnauthorized, "admin authentication required")
		return 0, false
	}
	return adminID, true
}
