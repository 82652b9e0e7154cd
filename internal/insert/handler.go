package insert

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/go-kdr/kdr/internal/httputil"
	"github.com/go-kdr/kdr/internal/index"
	"github.com/go-kdr/kdr/internal/logging"
	"github.com/go-kdr/kdr/pkg/geom"
)

type request struct {
	Points []geom.Point `json:"points"`
}

type response struct {
	RequestID string `json:"requestId"`
	Inserted  int    `json:"inserted"`
	Len       int    `json:"len"`
}

func NewHandler(cfg *Config, idx index.Inserter) (http.Handler, error) {
	return &handler{
		idx: idx,
		cfg: cfg,
	}, nil
}

type handler struct {
	idx index.Inserter
	cfg *Config
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
	defer cancel()

	requestID := uuid.New().String()
	logger := logging.FromContext(ctx).With("requestId", requestID)
	ctx = logging.WithLogger(ctx, logger)

	if !httputil.RequireJSONPost(ctx, w, r) {
		return
	}

	if !httputil.DecodeJSON(ctx, w, r, &req) {
		return
	}

	if len(req.Points) > h.cfg.MaxPoints {
		httputil.RespBadRequest(ctx, w, `{"error": "too many points, max allowed len is %d"}`, h.cfg.MaxPoints)
		return
	}

	n := h.idx.Insert(ctx, req.Points...)
	logger.Infof("inserted %d points", len(req.Points))

	httputil.RespJSON(ctx, w, http.StatusOK, response{
		RequestID: requestID,
		Inserted:  len(req.Points),
		Len:       n,
	})
}
