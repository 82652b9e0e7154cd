package kdr

import (
	"github.com/go-kdr/kdr/internal/dataset"
	"github.com/go-kdr/kdr/internal/index"
	"github.com/go-kdr/kdr/internal/insert"
	"github.com/go-kdr/kdr/internal/search"
	"github.com/go-kdr/kdr/internal/server"
	"github.com/go-kdr/kdr/internal/setup"
)

var (
	_ setup.LoggingConfigProvider = (*Config)(nil)
	_ setup.DatasetConfigProvider = (*Config)(nil)
	_ setup.IndexConfigProvider   = (*Config)(nil)
)

type Config struct {
	LogLevel       string `envconfig:"KDR_LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"KDR_LOG_DEVELOPMENT" default:"false"`
	Server         server.Config
	Insert         insert.Config
	Search         search.Config
	Dataset        dataset.Config
	Index          index.Config
}

func (c *Config) Logging() (string, bool) {
	return c.LogLevel, c.LogDevelopment
}

func (c *Config) DatasetConfig() *dataset.Config {
	return &c.Dataset
}

func (c *Config) IndexConfig() *index.Config {
	return &c.Index
}
