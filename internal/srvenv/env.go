package srvenv

import (
	"context"
	"net/http"

	"github.com/go-kdr/kdr/internal/dataset"
	"github.com/go-kdr/kdr/internal/index"
	"github.com/go-kdr/kdr/internal/metrics"
)

type Option func(*SrvEnv) *SrvEnv

func New(opts ...Option) *SrvEnv {
	env := &SrvEnv{}
	for _, f := range opts {
		env = f(env)
	}

	return env
}

type SrvEnv struct {
	index   *index.Index
	dataset *dataset.Dataset
	metrics http.Handler
}

func (s *SrvEnv) Index() *index.Index {
	return s.index
}

func (s *SrvEnv) Dataset() *dataset.Dataset {
	return s.dataset
}

func (s *SrvEnv) MetricsHandler() http.Handler {
	return s.metrics
}

func WithIndex(idx *index.Index) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.index = idx
		return s
	}
}

func WithDataset(d *dataset.Dataset) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.dataset = d
		return s
	}
}

func WithMetrics(h http.Handler) Option {
	return func(s *SrvEnv) *SrvEnv {
		s.metrics = h
		return s
	}
}

func (s *SrvEnv) Close(ctx context.Context) error {
	if s == nil {
		return nil
	}

	if s.metrics != nil {
		metrics.Unregister()
	}
	return nil
}
