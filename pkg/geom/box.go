package geom

// SplitDirection labels the line through a node that separates its subtrees.
// Horizontal is used on levels that discriminate on x, Vertical on levels that
// discriminate on y.
type SplitDirection uint8

const (
	Horizontal SplitDirection = iota
	Vertical
)

// SplitDirectionFor returns the split direction used at the given tree depth.
func SplitDirectionFor(level int) SplitDirection {
	if level%Dimensions == AxisX {
		return Horizontal
	}
	return Vertical
}

func (d SplitDirection) String() string {
	switch d {
	case Horizontal:
		return "HORIZONTAL"
	case Vertical:
		return "VERTICAL"
	default:
		return "UNKNOWN"
	}
}

// Orientation tells on which side of a split line a box lies when the box does
// not straddle that line.
type Orientation uint8

const (
	Negative Orientation = iota
	Positive
)

func (o Orientation) String() string {
	switch o {
	case Negative:
		return "NEGATIVE"
	case Positive:
		return "POSITIVE"
	default:
		return "UNKNOWN"
	}
}

type BoxOption func(*BoundingBox)

// WithIncludeBoundary makes IsInside accept points lying on the box edges.
func WithIncludeBoundary(include bool) BoxOption {
	return func(b *BoundingBox) {
		b.IncludeBoundary = include
	}
}

func NewBoundingBox(topLeft, bottomRight Point, opts ...BoxOption) BoundingBox {
	b := BoundingBox{
		TopLeft:     topLeft,
		BottomRight: bottomRight,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// BoundingBox is an axis-aligned query region given by two corners.
// TopLeft carries the lower x bound and the upper y bound, BottomRight carries
// the upper x bound and the lower y bound. Corner ordering is not validated:
// swapped corners change which predicates hold, they never fail.
type BoundingBox struct {
	TopLeft         Point `json:"topLeft" toml:"top_left"`
	BottomRight     Point `json:"bottomRight" toml:"bottom_right"`
	IncludeBoundary bool  `json:"includeBoundary" toml:"include_boundary"`
}

func (b BoundingBox) lowerBound(bound, v float64) bool {
	if b.IncludeBoundary {
		return bound <= v
	}
	return bound < v
}

func (b BoundingBox) upperBound(bound, v float64) bool {
	if b.IncludeBoundary {
		return bound >= v
	}
	return bound > v
}

// IsInside reports whether p lies within the box. The x range is
// [TopLeft.X, BottomRight.X] and the y range is [BottomRight.Y, TopLeft.Y];
// edges count only when IncludeBoundary is set. NaN coordinates never match.
func (b BoundingBox) IsInside(p Point) bool {
	return b.lowerBound(b.TopLeft.X, p.X) &&
		b.upperBound(b.BottomRight.X, p.X) &&
		b.lowerBound(b.BottomRight.Y, p.Y) &&
		b.upperBound(b.TopLeft.Y, p.Y)
}

// IntersectsSplitLine reports whether the box strictly straddles the split line
// through p.
func (b BoundingBox) IntersectsSplitLine(p Point, dir SplitDirection) bool {
	switch dir {
	case Vertical:
		return b.BottomRight.Y < p.Y && p.Y < b.TopLeft.Y
	default:
		return b.TopLeft.X < p.X && p.X < b.BottomRight.X
	}
}

// Orientation returns Positive when the box ends at or before the split line
// through p on the split axis, Negative otherwise.
func (b BoundingBox) Orientation(p Point, dir SplitDirection) Orientation {
	switch dir {
	case Horizontal:
		if b.BottomRight.X <= p.X {
			return Positive
		}
	case Vertical:
		if b.TopLeft.Y <= p.Y {
			return Positive
		}
	}
	return Negative
}
