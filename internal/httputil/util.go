package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-kdr/kdr/internal/logging"
)

const MaxBodyBytes = 64 * 1024 * 1024

// RequireJSONPost writes the error response and returns false unless r is a
// POST with a JSON body.
func RequireJSONPost(ctx context.Context, w http.ResponseWriter, r *http.Request) bool {
	logger := logging.FromContext(ctx)

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		logger.Debug(fmt.Sprintf(`{"error": "method %v is not allowed"}`, r.Method))
		_, _ = fmt.Fprintf(w, `{"error": "method %v is not allowed"}`, r.Method)
		return false
	}

	if t := r.Header.Get("content-type"); len(t) < 16 || t[:16] != "application/json" {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		logger.Debug(fmt.Sprintf(`{"error": "%v"}`, "content-type is not application/json"))
		_, _ = fmt.Fprintf(w, `{"error": "%v"}`, "content-type is not application/json")
		return false
	}

	return true
}

// DecodeJSON decodes the size-limited request body into v, answering the
// client itself when decoding fails.
func DecodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(v); err != nil {
		DecodeErr(ctx, w, err)
		return false
	}
	return true
}

func DecodeErr(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		syntaxErr      *json.SyntaxError
		unmarshalError *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &syntaxErr):
		RespBadRequest(ctx, w, `{"error": "malformed json at position %v"}`, syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		RespBadRequest(ctx, w, `{"error": "malformed json"}`)
	case errors.As(err, &unmarshalError):
		RespBadRequest(ctx, w, `{"error": "invalid value %v at position %v"}`, unmarshalError.Field, unmarshalError.Offset)
	case strings.HasPrefix(err.Error(), "json: unknown field"):
		fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
		RespBadRequest(ctx, w, `{"error": "unknown field %s"}`, fieldName)
	case errors.Is(err, io.EOF):
		RespBadRequest(ctx, w, `{"error": "body must not be empty"}`)
	case err.Error() == "http: request body too large":
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	default:
		RespInternalError(ctx, w, `{"error": "failed to decode json %v"}`, err)
	}
}

func RespBadRequest(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logging.FromContext(ctx).Debug(msg)
	http.Error(w, msg, http.StatusBadRequest)
}

func RespInternalError(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	logging.FromContext(ctx).Errorf(format, args...)
	http.Error(w, "Internal error", http.StatusInternalServerError)
}

func RespJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		RespInternalError(ctx, w, `{"error": "failed to encode output json %v"}`, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, "%s", bytes)
}
