package kdtree

import "github.com/go-kdr/kdr/pkg/geom"

type node struct {
	Key   geom.Point
	Left  *node
	Right *node
}

// Points returns the subtree keys in order.
func (n *node) Points() []geom.Point {
	var points []geom.Point
	stack := make([]*node, 0, 32)
	current := n
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.Left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		points = append(points, current.Key)
		current = current.Right
	}
	return points
}

// Insert attaches p as a new leaf below n, which sits at depth dim.
// Ties on the split axis go right.
func (n *node) Insert(p geom.Point, dim int) {
	current := n
	for {
		axis := dim % K
		if current.Key.Axis(axis) > p.Axis(axis) {
			if current.Left == nil {
				current.Left = &node{Key: p}
				return
			}
			current = current.Left
		} else {
			if current.Right == nil {
				current.Right = &node{Key: p}
				return
			}
			current = current.Right
		}
		dim++
	}
}

type frame struct {
	n     *node
	level int
}

// RangeSearch collects, in pre-order, the keys of the subtree rooted at n that
// lie inside box. Every node is tested against the unmodified box.
func (n *node) RangeSearch(box geom.BoundingBox, level int) []geom.Point {
	points := make([]geom.Point, 0)
	stack := []frame{{n: n, level: level}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n == nil {
			continue
		}

		next := f.level + 1
		if box.IsInside(f.n.Key) {
			points = append(points, f.n.Key)
			stack = append(stack, frame{f.n.Right, next}, frame{f.n.Left, next})
			continue
		}

		dir := geom.SplitDirectionFor(f.level)
		if box.IntersectsSplitLine(f.n.Key, dir) {
			stack = append(stack, frame{f.n.Right, next}, frame{f.n.Left, next})
			continue
		}

		switch box.Orientation(f.n.Key, dir) {
		case geom.Positive:
			stack = append(stack, frame{f.n.Left, next})
		case geom.Negative:
			stack = append(stack, frame{f.n.Right, next})
		}
	}

	return points
}

func (n *node) Depth() int {
	var depth int
	stack := []frame{{n: n, level: 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n == nil {
			continue
		}
		if f.level > depth {
			depth = f.level
		}
		stack = append(stack, frame{f.n.Left, f.level + 1}, frame{f.n.Right, f.level + 1})
	}
	return depth
}
