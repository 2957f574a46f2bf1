// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Summary describes the shape of a topology.
type Summary struct {
	Count    int
	ByLevel  map[Level]int
	ByBlock  map[int]int
	MaxDepth int

	// Extent bounds every node except the data center. It is the zero Box
	// when there are no such nodes.
	Extent Box
}

// Summarize computes a Summary of nodes. MaxDepth is -1 if the depths cannot
// be computed.
func Summarize(nodes []Node) Summary {
	s := Summary{
		Count:   len(nodes),
		ByLevel: make(map[Level]int),
		ByBlock: make(map[int]int),
	}
	first := true
	for _, n := range nodes {
		s.ByLevel[n.Level]++
		if n.Level == LevelDataCenter {
			continue
		}
		s.ByBlock[n.Block]++
		if first {
			s.Extent = Box{MinLat: n.Latitude, MaxLat: n.Latitude, MinLon: n.Longitude, MaxLon: n.Longitude}
			first = false
			continue
		}
		s.Extent.MinLat = min(s.Extent.MinLat, n.Latitude)
		s.Extent.MaxLat = max(s.Extent.MaxLat, n.Latitude)
		s.Extent.MinLon = min(s.Extent.MinLon, n.Longitude)
		s.Extent.MaxLon = max(s.Extent.MaxLon, n.Longitude)
	}

	depths, err := Depths(nodes)
	if err != nil {
		s.MaxDepth = -1
	} else if len(depths) > 0 {
		s.MaxDepth = slices.Max(depths)
	}
	return s
}

// Blocks renders ByBlock as "block:count" pairs in block order.
func (s Summary) Blocks() string {
	var b strings.Builder
	for i, block := range slices.Sorted(maps.Keys(s.ByBlock)) {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%d", block, s.ByBlock[block])
	}
	return b.String()
}
