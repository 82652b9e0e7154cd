// Package metrics registers the opencensus views of the service and exposes
// them in the Prometheus text format.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"contrib.go.opencensus.io/exporter/prometheus"
	"go.opencensus.io/stats/view"

	"github.com/go-kdr/kdr/internal/index"
	"github.com/go-kdr/kdr/internal/logging"
)

// NewExporter registers the index views and returns an http.Handler serving them.
func NewExporter(ctx context.Context, namespace string) (http.Handler, error) {
	logger := logging.FromContext(ctx)

	if err := view.Register(index.Views...); err != nil {
		return nil, fmt.Errorf("unable register views: %w", err)
	}

	exporter, err := prometheus.NewExporter(prometheus.Options{
		Namespace: namespace,
		OnError: func(err error) {
			logger.Errorf("prometheus exporter: %v", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable create prometheus exporter: %w", err)
	}

	logger.Infof("metrics exporter created with namespace %s", namespace)

	return exporter, nil
}

// Unregister removes the index views, it is used on shutdown and in tests.
func Unregister() {
	view.Unregister(index.Views...)
}
