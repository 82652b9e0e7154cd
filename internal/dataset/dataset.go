// Package dataset provides seed points and queries for the index: the built-in
// demonstration data, TOML dataset files and random points.
package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/valyala/fastrand"

	"github.com/go-kdr/kdr/internal/logging"
	"github.com/go-kdr/kdr/pkg/geom"
)

var ErrEmptyRange = errors.New("random coordinate range must be positive")

// Dataset is a list of points to insert, in order, and the queries to run
// against them.
type Dataset struct {
	Points  []geom.Point       `toml:"points"`
	Queries []geom.BoundingBox `toml:"queries"`
}

// Demo returns the five demonstration points and the strict (0,10)-(10,0) query.
func Demo() *Dataset {
	return &Dataset{
		Points: []geom.Point{
			geom.NewPoint(10, 20),
			geom.NewPoint(25, 40),
			geom.NewPoint(1, 2),
			geom.NewPoint(85, 100),
			geom.NewPoint(0.9, 0.6),
		},
		Queries: []geom.BoundingBox{
			geom.NewBoundingBox(geom.NewPoint(0, 10), geom.NewPoint(10, 0)),
		},
	}
}

// Decode parses a dataset in the TOML format:
//
//	[[points]]
//	x = 10.0
//	y = 20.0
//
//	[[queries]]
//	top_left = { x = 0.0, y = 10.0 }
//	bottom_right = { x = 10.0, y = 0.0 }
//	include_boundary = false
func Decode(data string) (*Dataset, error) {
	var d Dataset
	if _, err := toml.Decode(data, &d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &d, nil
}

func Load(ctx context.Context, path string) (*Dataset, error) {
	var d Dataset
	md, err := toml.DecodeFile(path, &d)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logging.FromContext(ctx).Warnf("dataset %s: ignored keys %v", path, undecoded)
	}
	logging.FromContext(ctx).Infof("loaded dataset %s: %d points, %d queries", path, len(d.Points), len(d.Queries))
	return &d, nil
}

// Random returns n points with integral coordinates in [0, max).
func Random(n int, max uint32) ([]geom.Point, error) {
	if max == 0 {
		return nil, ErrEmptyRange
	}
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.NewPoint(float64(fastrand.Uint32n(max)), float64(fastrand.Uint32n(max)))
	}
	return points, nil
}

// FromConfig builds the seed dataset described by cfg. The file is read first,
// random points are appended after its points.
func FromConfig(ctx context.Context, cfg *Config) (*Dataset, error) {
	d := &Dataset{}
	if cfg.File != "" {
		loaded, err := Load(ctx, cfg.File)
		if err != nil {
			return nil, err
		}
		d = loaded
	}
	if cfg.Random > 0 {
		points, err := Random(cfg.Random, cfg.RandomMax)
		if err != nil {
			return nil, fmt.Errorf("random dataset: %w", err)
		}
		d.Points = append(d.Points, points...)
	}
	return d, nil
}
