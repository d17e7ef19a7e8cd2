package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cms/internal/domain"
)

func TestParsePagination(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		wantPage int
		wantRows int
	}{
		{name: "defaults when no query params", query: "", wantPage: 1, wantRows: 10},
		{name: "uses explicit page and rows", query: "page=2&rows=5", wantPage: 2, wantRows: 5},
		{name: "clamps page less than one", query: "page=0&rows=5", wantPage: 1, wantRows: 5},
		{name: "clamps negative page", query: "page=-3", wantPage: 1, wantRows: 10},
		{name: "ignores invalid page string", query: "page=abc", wantPage: 1, wantRows: 10},
		{name: "replaces rows less than one", query: "page=3&rows=0", wantPage: 3, wantRows: 10},
		{name: "caps rows above maximum", query: "rows=500", wantPage: 1, wantRows: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)
			got := ParsePagination(req, 10, 100)

			if got.Page != tc.wantPage {
				t.Fatalf("expected page=%d, got %d", tc.wantPage, got.Page)
			}
			if got.Rows != tc.wantRows {
				t.Fatalf("expected rows=%d, got %d", tc.wantRows, got.Rows)
			}
		})
	}
}

func TestPathID(t *testing.T) {
	testCases := []struct {
		value   string
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.SetPathValue("id", tc.value)

		got, err := PathID(req, "id")
		if tc.wantErr {
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("%q: expected validation error, got %v", tc.value, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%q: got %d, %v; want %d", tc.value, got, err, tc.want)
		}
	}
}

func TestParseJSON_RejectsUnknownFields(t *testing.T) {
	var dest struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	err := ParseJSON(httptest.NewRecorder(), req, &dest)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
