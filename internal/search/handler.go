package search

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/go-kdr/kdr/internal/httputil"
	"github.com/go-kdr/kdr/internal/index"
	"github.com/go-kdr/kdr/internal/logging"
	"github.com/go-kdr/kdr/pkg/geom"
)

type request struct {
	Queries []geom.BoundingBox `json:"queries"`
}

type result struct {
	Count  int          `json:"count"`
	Points []geom.Point `json:"points"`
}

type response struct {
	RequestID string   `json:"requestId"`
	Results   []result `json:"results"`
}

func NewHandler(cfg *Config, idx index.Searcher) (http.Handler, error) {
	return &handler{
		cfg: cfg,
		idx: idx,
	}, nil
}

type handler struct {
	idx index.Searcher
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

	if len(req.Queries) > h.cfg.MaxQueries {
		httputil.RespBadRequest(ctx, w, `{"error": "queries is too large, max allowed len is %d"}`, h.cfg.MaxQueries)
		return
	}

	results := make([]result, len(req.Queries))
	errGrp, grpCtx := errgroup.WithContext(ctx)
	for i := range req.Queries {
		i := i
		errGrp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}
			points := h.idx.Search(grpCtx, req.Queries[i])
			results[i] = result{Count: len(points), Points: points}
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		httputil.RespInternalError(ctx, w, `{"error": "search processing error, %v"}`, err)
		return
	}

	logger.Debugf("answered %d queries", len(req.Queries))

	httputil.RespJSON(ctx, w, http.StatusOK, response{
		RequestID: requestID,
		Results:   results,
	})
}
