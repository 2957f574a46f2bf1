// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo

import (
	"fmt"

	"github.com/gammazero/deque"
)

// Validate checks that nodes form a well-shaped topology:
//   - node i has id i;
//   - node 0, and only node 0, is the data center, with no parent;
//   - every proxy reports to the data center;
//   - every gateway reports to an earlier node.
//
// The error wraps [ErrInvalidTopology].
func Validate(nodes []Node) error {
	if len(nodes) == 0 {
		return fmt.Errorf("%w: no nodes", ErrInvalidTopology)
	}
	for i, n := range nodes {
		if n.ID != i {
			return fmt.Errorf("%w: node at index %d has id %d", ErrInvalidTopology, i, n.ID)
		}
		if i == RootID && n.Level != LevelDataCenter {
			return fmt.Errorf("%w: %v is a %v, want %v", ErrInvalidTopology, n, n.Level, LevelDataCenter)
		}
		switch n.Level {
		case LevelDataCenter:
			if i != RootID {
				return fmt.Errorf("%w: %v is a second %v", ErrInvalidTopology, n, n.Level)
			}
			if n.Parent != NoParent {
				return fmt.Errorf("%w: %v has parent %d, want %d", ErrInvalidTopology, n, n.Parent, NoParent)
			}
		case LevelProxy:
			if n.Parent != RootID {
				return fmt.Errorf("%w: %v %v has parent %d, want %d", ErrInvalidTopology, n.Level, n, n.Parent, RootID)
			}
		case LevelGateway:
			if n.Parent < RootID || n.Parent >= n.ID {
				return fmt.Errorf("%w: %v %v has parent %d outside [%d, %d)", ErrInvalidTopology, n.Level, n, n.Parent, RootID, n.ID)
			}
		default:
			return fmt.Errorf("%w: %v has unknown level %d", ErrInvalidTopology, n, int(n.Level))
		}
	}
	return nil
}

// Depths returns the number of hops from the data center to each node, indexed
// by id, found by a breadth-first walk from node 0. Nodes that cannot be
// reached get -1. The ids of nodes must be dense and in order, and every parent
// must be NoParent or the id of a node.
func Depths(nodes []Node) ([]int, error) {
	children := make([][]int, len(nodes))
	for i, n := range nodes {
		if n.ID != i {
			return nil, fmt.Errorf("%w: node at index %d has id %d", ErrInvalidTopology, i, n.ID)
		}
		if n.Parent == NoParent {
			continue
		}
		if n.Parent < 0 || n.Parent >= len(nodes) {
			return nil, fmt.Errorf("%w: %v has unknown parent %d", ErrInvalidTopology, n, n.Parent)
		}
		children[n.Parent] = append(children[n.Parent], n.ID)
	}

	depths := make([]int, len(nodes))
	for i := range depths {
		depths[i] = -1
	}
	if len(nodes) == 0 {
		return depths, nil
	}

	var queue deque.Deque[int]
	depths[RootID] = 0
	queue.PushBack(RootID)
	for queue.Len() > 0 {
		id := queue.PopFront()
		for _, child := range children[id] {
			if depths[child] >= 0 {
				continue
			}
			depths[child] = depths[id] + 1
			queue.PushBack(child)
		}
	}
	return depths, nil
}
