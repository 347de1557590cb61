// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/validation"
)

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
	return req.WithContext(logging.ContextWithRequestID(req.Context(), "req-123"))
}

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	NewResponseWriter(w, newRequest()).SuccessList([]string{"a", "b"}, 2)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	env := decode[[]string](t, w)
	if !env.Success || len(env.Data) != 2 || env.Error != nil {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Meta.RequestID != "req-123" || env.Meta.Count == nil || *env.Meta.Count != 2 {
		t.Errorf("meta = %+v", env.Meta)
	}
	if env.Meta.Timestamp.IsZero() {
		t.Error("meta timestamp not set")
	}
}

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(*ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("gone") }, http.StatusNotFound, ErrCodeNotFound},
		{"method", func(rw *ResponseWriter) { rw.MethodNotAllowed() }, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
		{"rate limited", func(rw *ResponseWriter) { rw.TooManyRequests("slow down") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"timeout", func(rw *ResponseWriter) { rw.Timeout() }, http.StatusGatewayTimeout, ErrCodeTimeout},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("boom") }, http.StatusInternalServerError, ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			tt.write(NewResponseWriter(w, newRequest()))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			env := decode[json.RawMessage](t, w)
			if env.Success || env.Error == nil {
				t.Fatalf("envelope = %+v", env)
			}
			if env.Error.Code != tt.wantCode || env.Error.RequestID != "req-123" {
				t.Errorf("error = %+v", env.Error)
			}
			if strings.Contains(w.Body.String(), `"data"`) {
				t.Error("error envelope carries data")
			}
		})
	}
}

func TestResponseWriter_ValidationError(t *testing.T) {
	t.Parallel()

	verr := &validation.RequestValidationError{Fields: []validation.FieldError{
		{Field: "n", Tag: "min", Param: "1", Value: 0, Message: "n must be at least 1"},
		{Field: "title", Tag: "notblank", Message: "title must not be blank"},
	}}

	w := httptest.NewRecorder()
	NewResponseWriter(w, newRequest()).ValidationError(verr)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	env := decode[json.RawMessage](t, w)
	if env.Error.Code != ErrCodeValidationFailed {
		t.Errorf("code = %q", env.Error.Code)
	}
	if !strings.Contains(env.Error.Message, "n must be at least 1") || !strings.Contains(env.Error.Message, "title must not be blank") {
		t.Errorf("message = %q", env.Error.Message)
	}
	details, ok := env.Error.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("details = %#v", env.Error.Details)
	}
	if fields, ok := details["fields"].([]interface{}); !ok || len(fields) != 2 {
		t.Errorf("fields = %#v", details["fields"])
	}
}
