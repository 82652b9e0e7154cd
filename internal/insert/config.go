package insert

import (
	"time"
)

type Config struct {
	RequestTimeout time.Duration `envconfig:"KDR_INSERT_REQUEST_TIMEOUT" default:"30s"`
	MaxPoints      int           `envconfig:"KDR_INSERT_MAX_POINTS" default:"10000"`
}
