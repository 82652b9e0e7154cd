package index

import (
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

var (
	BoundaryKey = tag.MustNewKey("boundary")

	InsertedPoints = stats.Int64("kdr/index/inserted_points", "Number of points inserted into the index", stats.UnitDimensionless)
	Searches       = stats.Int64("kdr/index/searches", "Number of range searches", stats.UnitDimensionless)
	SearchResults  = stats.Int64("kdr/index/search_results", "Number of points returned by a range search", stats.UnitDimensionless)
)

// Views exposes the index measures. They are registered by the metrics package.
var Views = []*view.View{
	{
		Name:        "kdr/index/inserted_points_count",
		Description: "Total number of points inserted into the index",
		Measure:     InsertedPoints,
		Aggregation: view.Sum(),
	},
	{
		Name:        "kdr/index/searches_count",
		Description: "Total number of range searches",
		Measure:     Searches,
		TagKeys:     []tag.Key{BoundaryKey},
		Aggregation: view.Count(),
	},
	{
		Name:        "kdr/index/search_results",
		Description: "Distribution of range search result sizes",
		Measure:     SearchResults,
		TagKeys:     []tag.Key{BoundaryKey},
		Aggregation: view.Distribution(0, 1, 5, 10, 50, 100, 500, 1000, 5000, 10000),
	},
}

func boundaryTag(include bool) string {
	if include {
		return "inclusive"
	}
	return "strict"
}
