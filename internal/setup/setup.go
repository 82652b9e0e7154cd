package setup

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/go-kdr/kdr/internal/dataset"
	"github.com/go-kdr/kdr/internal/index"
	"github.com/go-kdr/kdr/internal/logging"
	"github.com/go-kdr/kdr/internal/metrics"
	"github.com/go-kdr/kdr/internal/srvenv"
)

type LoggingConfigProvider interface {
	Logging() (level string, development bool)
}

type DatasetConfigProvider interface {
	DatasetConfig() *dataset.Config
}

type IndexConfigProvider interface {
	IndexConfig() *index.Config
}

// Setup loads config from the environment and builds the service environment.
// The returned context carries the configured logger.
func Setup(ctx context.Context, config interface{}) (context.Context, *srvenv.SrvEnv, error) {
	if err := envconfig.Process("", config); err != nil {
		return ctx, nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	if loggingConfigProvider, ok := config.(LoggingConfigProvider); ok {
		ctx = logging.WithLogger(ctx, logging.NewLogger(loggingConfigProvider.Logging()))
	}
	logger := logging.FromContext(ctx)

	var serverEnvOpts []srvenv.Option

	idx := index.New()
	serverEnvOpts = append(serverEnvOpts, srvenv.WithIndex(idx))

	if indexConfigProvider, ok := config.(IndexConfigProvider); ok {
		logger.Info("Configuring metrics")
		exporter, err := metrics.NewExporter(ctx, indexConfigProvider.IndexConfig().MetricsNamespace)
		if err != nil {
			return ctx, nil, fmt.Errorf("unable create metrics exporter: %w", err)
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithMetrics(exporter))
	}

	if datasetConfigProvider, ok := config.(DatasetConfigProvider); ok {
		logger.Info("Configuring dataset")
		d, err := dataset.FromConfig(ctx, datasetConfigProvider.DatasetConfig())
		if err != nil {
			return ctx, nil, fmt.Errorf("unable load dataset: %w", err)
		}
		if len(d.Points) > 0 {
			n := idx.Insert(ctx, d.Points...)
			logger.Infof("seeded index with %d points, depth %d", n, idx.Depth())
		}
		serverEnvOpts = append(serverEnvOpts, srvenv.WithDataset(d))
	}

	return ctx, srvenv.New(serverEnvOpts...), nil
}
