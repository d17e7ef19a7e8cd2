package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const (
	adminIDKey   contextKey = "adminID"
	requestIDKey contextKey = "requestID"
)

// WithAdminID adds the authenticated admin to the request context
func WithAdminID(r *http.Request, adminID int64) *http.Request {
	ctx := context.WithValue(r.Context(), adminIDKey, adminID)
	return r.WithContext(ctx)
}

// GetAdminID retrieves the admin from context, returns 0 if not found
func GetAdminID(r *http.Request) int64 {
	adminID, _ := r.Context().Value(adminIDKey).(int64)
	return adminID
}

// WithRequestID adds a request id to the request context
func WithRequestID(r *http.Request, requestID string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDKey, requestID)
	return r.WithContext(ctx)
}

// GetRequestID retrieves the request id, returns "" if not set
func GetRequestID(r *http.Request) string {
	requestID, _ := r.Context().Value(requestIDKey).(string)
	return requestID
}
