package server

import (
	"context"
	"net/http"

	"github.com/go-kdr/kdr/internal/httputil"
	"github.com/go-kdr/kdr/internal/index"
)

type healthResponse struct {
	Status string `json:"status"`
	Len    int    `json:"len"`
	Depth  int    `json:"depth"`
}

// HandleHealth reports the index shape.
func HandleHealth(ctx context.Context, stats index.Stats) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.RespJSON(ctx, w, http.StatusOK, healthResponse{
			Status: "ok",
			Len:    stats.Len(),
			Depth:  stats.Depth(),
		})
	})
}
