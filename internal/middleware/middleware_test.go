package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cms/internal/domain"
	"cms/internal/domain/models"
	"cms/internal/httputil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type fakeVerifier struct {
	claims *models.AdminClaims
	err    error
	tokens []string
}

func (v *fakeVerifier) VerifyToken(token string) (*models.AdminClaims, error) {
	v.tokens = append(v.tokens, token)
	return v.claims, v.err
}

func (v *fakeVerifier) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminClaims(subject string) *models.AdminClaims {
	return &models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
		Role:             models.AdminRole,
	}
}

func TestRequireAdmin(t *testing.T) {
	testCases := []struct {
		name        string
		header      string
		verifier    *fakeVerifier
		wantStatus  int
		wantAdminID int64
	}{
		{
			name:        "valid token",
			header:      "Bearer good",
			verifier:    &fakeVerifier{claims: adminClaims("42")},
			wantStatus:  http.StatusOK,
			wantAdminID: 42,
		},
		{
			name:       "missing header",
			header:     "",
			verifier:   &fakeVerifier{claims: adminClaims("42")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			verifier:   &fakeVerifier{claims: adminClaims("42")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			header:     "Bearer bad",
			verifier:   &fakeVerifier{err: domain.ErrUnauthorized},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-admin role",
			header:     "Bearer editor",
			verifier:   &fakeVerifier{err: domain.ErrForbidden},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "subject is not numeric",
			header:     "Bearer odd",
			verifier:   &fakeVerifier{claims: adminClaims("abc")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotAdminID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAdminID = httputil.GetAdminID(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/folders", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			RequireAdmin(tc.verifier, discardLogger())(next).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if gotAdminID != tc.wantAdminID {
				t.Errorf("expected admin id %d, got %d", tc.wantAdminID, gotAdminID)
			}
		})
	}
}

func TestRequireAdmin_PassesTokenWithoutScheme(t *testing.T) {
	verifier := &fakeVerifier{claims: adminClaims("7")}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	RequireAdmin(verifier, discardLogger())(next).ServeHTTP(httptest.NewRecorder(), req)

	if len(verifier.tokens) != 1 || verifier.tokens[0] != "abc.def.ghi" {
		t.Errorf("unexpected tokens passed to verifier: %v", verifier.tokens)
	}
}

func TestRecovery(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recovery(discardLogger())(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != float64(http.StatusInternalServerError) {
		t.Errorf("expected problem status 500, got %v", body["status"])
	}
}

func TestRecovery_CarriesRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httputil.WithRequestID(httptest.NewRequest(http.MethodGet, "/", nil), "req-1")
	rec := httptest.NewRecorder()
	Recovery(discardLogger())(next).ServeHTTP(rec, req)

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["request_id"] != "req-1" {
		t.Errorf("expected request_id req-1, got %v", body["request_id"])
	}
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("expected ErrAbortHandler to propagate, got %v", rec)
		}
	}()
	Recovery(discardLogger())(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	t.Error("panic was swallowed")
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = httputil.GetRequestID(r)
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("generates an id", func(t *testing.T) {
		logs.Reset()
		rec := httptest.NewRecorder()
		RequestLogger(logger)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/folders/tree", nil))

		if _, err := uuid.Parse(seenID); err != nil {
			t.Fatalf("expected a uuid request id, got %q", seenID)
		}
		if rec.Header().Get(RequestIDHeader) != seenID {
			t.Errorf("response header %q does not match context id %q", rec.Header().Get(RequestIDHeader), seenID)
		}

		var entry map[string]interface{}
		if err := json.Unmarshal(logs.Bytes(), &entry); err != nil {
			t.Fatalf("decode log line: %v", err)
		}
		if entry["status"] != float64(http.StatusTeapot) {
			t.Errorf("expected logged status 418, got %v", entry["status"])
		}
		if entry["path"] != "/api/folders/tree" {
			t.Errorf("expected logged path, got %v", entry["path"])
		}
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, incoming)

		RequestLogger(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

		if seenID != incoming {
			t.Errorf("expected %s, got %s", incoming, seenID)
		}
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")

		RequestLogger(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

		if seenID == "not-a-uuid" {
			t.Error("malformed request id was kept")
		}
	})
}
