/*
 * Copyright 2020 Dennis Kuhnert
 * Copyright 2020 Ivanov Nikita
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

// Package kdtree implements a two-dimensional tree of planar points that
// answers axis-aligned range queries.
//
// The tree is built by plain insertion: depth 0 splits on x, depth 1 on y and so
// on. It is never rebalanced, so its depth depends on the insertion order.
//
// Tree is not safe for concurrent use. Callers that insert and search from
// several goroutines must hold their own lock around every call.
package kdtree

import (
	"github.com/go-kdr/kdr/pkg/geom"
)

// K is the number of axes the tree alternates over.
const K = geom.Dimensions

func New() *Tree {
	return &Tree{}
}

type Tree struct {
	root *node
	len  int
}

// Insert adds p as a new leaf. The first point becomes the root.
func (t *Tree) Insert(p geom.Point) {
	if t.root == nil {
		t.root = &node{Key: p}
	} else {
		t.root.Insert(p, 0)
	}
	t.len += 1
}

// RangeSearch returns the stored points accepted by box in pre-order.
// The result is never nil and does not share memory with the tree.
func (t *Tree) RangeSearch(box geom.BoundingBox) []geom.Point {
	if t.root == nil {
		return []geom.Point{}
	}
	return t.root.RangeSearch(box, 0)
}

func (t *Tree) Len() int {
	return t.len
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Depth() int {
	if t.root == nil {
		return 0
	}
	return t.root.Depth()
}

func (t *Tree) Points() []geom.Point {
	if t.root == nil {
		return []geom.Point{}
	}
	return t.root.Points()
}
