package index

import (
	"context"
	"sync"

	"go.opencensus.io/stats"
	"go.opencensus.io/tag"

	"github.com/go-kdr/kdr/internal/logging"
	"github.com/go-kdr/kdr/pkg/container/kdtree"
	"github.com/go-kdr/kdr/pkg/geom"
)

// Inserter accepts points into the index.
type Inserter interface {
	Insert(ctx context.Context, points ...geom.Point) int
}

// Searcher answers range queries.
type Searcher interface {
	Search(ctx context.Context, box geom.BoundingBox) []geom.Point
}

// Stats describes the current shape of the index.
type Stats interface {
	Len() int
	Depth() int
}

type InsertSearcher interface {
	Inserter
	Searcher
	Stats
}

var _ InsertSearcher = (*Index)(nil)

func New() *Index {
	return &Index{tree: kdtree.New()}
}

// Index guards a kdtree.Tree with a reader-writer lock: inserts are exclusive,
// searches share the read lock.
type Index struct {
	mtx  sync.RWMutex
	tree *kdtree.Tree
}

// Insert adds the points in order and returns the index length afterwards.
func (idx *Index) Insert(ctx context.Context, points ...geom.Point) int {
	idx.mtx.Lock()
	for i := range points {
		idx.tree.Insert(points[i])
	}
	n := idx.tree.Len()
	idx.mtx.Unlock()

	stats.Record(ctx, InsertedPoints.M(int64(len(points))))
	logging.FromContext(ctx).Debugf("inserted %d points, index length %d", len(points), n)

	return n
}

func (idx *Index) Search(ctx context.Context, box geom.BoundingBox) []geom.Point {
	idx.mtx.RLock()
	points := idx.tree.RangeSearch(box)
	idx.mtx.RUnlock()

	if err := stats.RecordWithTags(
		ctx,
		[]tag.Mutator{tag.Upsert(BoundaryKey, boundaryTag(box.IncludeBoundary))},
		Searches.M(1),
		SearchResults.M(int64(len(points))),
	); err != nil {
		logging.FromContext(ctx).Errorf("unable record search stats: %v", err)
	}

	return points
}

func (idx *Index) Len() int {
	idx.mtx.RLock()
	defer idx.mtx.RUnlock()
	return idx.tree.Len()
}

func (idx *Index) Depth() int {
	idx.mtx.RLock()
	defer idx.mtx.RUnlock()
	return idx.tree.Depth()
}

// Points returns every stored point in order.
func (idx *Index) Points() []geom.Point {
	idx.mtx.RLock()
	defer idx.mtx.RUnlock()
	return idx.tree.Points()
}
