// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo

import (
	"cmp"
	"slices"

	"github.com/addrummond/heap"
)

// NodesNear returns the nodes lying strictly inside the window of radius r
// around center, in input order.
func NodesNear(nodes []Node, center Location, r Radius) []Node {
	window := Around(center, r)
	var near []Node
	for _, n := range nodes {
		if window.ContainsStrictly(n.Location()) {
			near = append(near, n)
		}
	}
	return near
}

// Nearest returns the k nodes closest to center, closest first. Ties are
// broken by id. Fewer than k nodes are returned if nodes is shorter than k.
func Nearest(nodes []Node, center Location, k int) []Node {
	if k <= 0 || len(nodes) == 0 {
		return nil
	}

	// Keep the best k seen so far in a max-heap so the worst of them is
	// always the one evicted.
	var worst heap.Heap[candidate, heap.Max]
	size := 0
	for i := range nodes {
		c := candidate{
			index:    i,
			id:       nodes[i].ID,
			distance: Distance(center, nodes[i].Location()),
		}
		if size == k {
			top, _ := heap.Peek(&worst)
			if c.Cmp(&top) >= 0 {
				continue
			}
			_, _ = heap.PopOrderable(&worst)
			size--
		}
		heap.PushOrderable(&worst, c)
		size++
	}

	nearest := make([]Node, size)
	for i := size - 1; i >= 0; i-- {
		c, _ := heap.PopOrderable(&worst)
		nearest[i] = nodes[c.index]
	}
	return nearest
}

type candidate struct {
	index    int
	id       int
	distance float64
}

func (a *candidate) Cmp(b *candidate) int {
	return cmp.Or(
		cmp.Compare(a.distance, b.distance),
		cmp.Compare(a.id, b.id),
	)
}

// SortByDistance orders nodes in place by distance from center, closest first,
// breaking ties by id.
func SortByDistance(nodes []Node, center Location) {
	slices.SortStableFunc(nodes, func(a, b Node) int {
		return cmp.Or(
			cmp.Compare(Distance(center, a.Location()), Distance(center, b.Location())),
			cmp.Compare(a.ID, b.ID),
		)
	})
}
