package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-kdr/kdr/pkg/geom"
)

const sample = `
[[points]]
x = 10.0
y = 20.0

[[points]]
x = 0.9
y = 0.6

[[queries]]
top_left = { x = 0.0, y = 10.0 }
bottom_right = { x = 10.0, y = 0.0 }
include_boundary = true
`

func TestDecode(t *testing.T) {
	t.Parallel()
	d, err := Decode(sample)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.NewPoint(10, 20), geom.NewPoint(0.9, 0.6)}, d.Points)
	require.Len(t, d.Queries, 1)
	assert.Equal(t, geom.NewBoundingBox(
		geom.NewPoint(0, 10), geom.NewPoint(10, 0), geom.WithIncludeBoundary(true),
	), d.Queries[0])
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()
	_, err := Decode("[[points]\nx = ")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir, err := os.MkdirTemp("", "kdr-dataset")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "points.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0600))

	d, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, d.Points, 2)

	_, err = Load(context.Background(), filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	t.Parallel()
	points, err := Random(100, 10)
	require.NoError(t, err)
	require.Len(t, points, 100)
	for _, p := range points {
		assert.True(t, p.X >= 0 && p.X < 10 && p.Y >= 0 && p.Y < 10, "point %v out of range", p)
	}

	_, err = Random(1, 0)
	assert.ErrorIs(t, err, ErrEmptyRange)
}

func TestFromConfig(t *testing.T) {
	t.Parallel()
	d, err := FromConfig(context.Background(), &Config{Random: 7, RandomMax: 5})
	require.NoError(t, err)
	assert.Len(t, d.Points, 7)
	assert.Empty(t, d.Queries)

	d, err = FromConfig(context.Background(), &Config{})
	require.NoError(t, err)
	assert.Empty(t, d.Points)
}

func TestDemo(t *testing.T) {
	t.Parallel()
	d := Demo()
	assert.Len(t, d.Points, 5)
	require.Len(t, d.Queries, 1)
	assert.False(t, d.Queries[0].IncludeBoundary)
}
