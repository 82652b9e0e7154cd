package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequireJSONPost(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		method         string
		contentType    string
		expected       bool
		expectedStatus int
	}{
		{name: "positive", method: http.MethodPost, contentType: "application/json", expected: true, expectedStatus: http.StatusOK},
		{name: "positive_charset", method: http.MethodPost, contentType: "application/json; charset=utf-8", expected: true, expectedStatus: http.StatusOK},
		{name: "wrong_method", method: http.MethodGet, contentType: "application/json", expectedStatus: http.StatusMethodNotAllowed},
		{name: "wrong_content_type", method: http.MethodPost, contentType: "text/plain", expectedStatus: http.StatusUnsupportedMediaType},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest(test.method, "/", strings.NewReader("{}"))
			r.Header.Set("Content-Type", test.contentType)
			w := httptest.NewRecorder()
			if got := RequireJSONPost(context.Background(), w, r); got != test.expected {
				t.Errorf("calling RequireJSONPost, got: %v, expected: %v", got, test.expected)
			}
			if w.Code != test.expectedStatus {
				t.Errorf("response status, got: %d, expected: %d", w.Code, test.expectedStatus)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		body           string
		expected       bool
		expectedStatus int
	}{
		{name: "positive", body: `{"x": 1}`, expected: true, expectedStatus: http.StatusOK},
		{name: "malformed", body: `{"x": }`, expectedStatus: http.StatusBadRequest},
		{name: "truncated", body: `{"x": 1`, expectedStatus: http.StatusBadRequest},
		{name: "wrong_type", body: `{"x": "a"}`, expectedStatus: http.StatusBadRequest},
		{name: "unknown_field", body: `{"z": 1}`, expectedStatus: http.StatusBadRequest},
		{name: "empty", body: ``, expectedStatus: http.StatusBadRequest},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			var v struct {
				X float64 `json:"x"`
			}
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			if got := DecodeJSON(context.Background(), w, r, &v); got != test.expected {
				t.Errorf("calling DecodeJSON, got: %v, expected: %v", got, test.expected)
			}
			if w.Code != test.expectedStatus {
				t.Errorf("response status, got: %d, expected: %d", w.Code, test.expectedStatus)
			}
		})
	}
}
