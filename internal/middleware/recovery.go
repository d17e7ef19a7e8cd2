package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"cms/internal/httputil"
)

// Recovery turns a handler panic into a 500 problem response carrying the
// request id. http.ErrAbortHandler is re-raised so the server aborts the
// connection as usual.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				requestID := httputil.GetRequestID(r)
				logger.Error("handler panic",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", requestID,
					"admin_id", httputil.GetAdminID(r),
					"stack", string(debug.Stack()),
				)

				var extras map[string]interface{}
				if requestID != "" {
					extras = map[string]interface{}{"request_id": requestID}
				}
				httputil.RespondErrorWithExtras(w, http.StatusInternalServerError, "internal server error", extras)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
