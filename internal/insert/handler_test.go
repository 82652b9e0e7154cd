package insert

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-kdr/kdr/internal/index"
)

func TestHandler_ServeHTTP(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		method         string
		body           string
		expectedStatus int
		expectedLen    int
	}{
		{
			name:           "positive",
			method:         http.MethodPost,
			body:           `{"points": [{"x": 10, "y": 20}, {"x": 0.9, "y": 0.6}]}`,
			expectedStatus: http.StatusOK,
			expectedLen:    2,
		},
		{
			name:           "empty_points",
			method:         http.MethodPost,
			body:           `{"points": []}`,
			expectedStatus: http.StatusOK,
			expectedLen:    0,
		},
		{
			name:           "too_many_points",
			method:         http.MethodPost,
			body:           `{"points": [{"x": 1, "y": 1}, {"x": 2, "y": 2}, {"x": 3, "y": 3}, {"x": 4, "y": 4}]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed",
			method:         http.MethodPost,
			body:           `{"points": [{"x": 1, "y": }]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrong_method",
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			idx := index.New()
			h, err := NewHandler(&Config{RequestTimeout: time.Second, MaxPoints: 3}, idx)
			require.NoError(t, err)

			r := httptest.NewRequest(test.method, "/insert", strings.NewReader(test.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			require.Equal(t, test.expectedStatus, w.Code, w.Body.String())
			assert.Equal(t, test.expectedLen, idx.Len())
			if w.Code != http.StatusOK {
				return
			}
			var resp response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, test.expectedLen, resp.Inserted)
			assert.Equal(t, test.expectedLen, resp.Len)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}
