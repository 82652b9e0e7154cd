package index

type Config struct {
	MetricsNamespace string `envconfig:"KDR_METRICS_NAMESPACE" default:"kdr"`
}
