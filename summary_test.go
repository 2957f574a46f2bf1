// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo_test

import (
	"testing"

	"github.com/petenewcomb/edgetopo-go"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	chk := require.New(t)
	nodes := smallTopology()
	for i := range nodes[1:] {
		nodes[i+1].Latitude = float64(i)
		nodes[i+1].Longitude = float64(-i)
	}

	s := edgetopo.Summarize(nodes)
	chk.Equal(6, s.Count)
	chk.Equal(map[edgetopo.Level]int{
		edgetopo.LevelDataCenter: 1,
		edgetopo.LevelProxy:      2,
		edgetopo.LevelGateway:    3,
	}, s.ByLevel)
	chk.Equal(map[int]int{1: 2, 2: 2, 5: 1}, s.ByBlock)
	chk.Equal("1:2 2:2 5:1", s.Blocks())
	chk.Equal(4, s.MaxDepth)
	chk.Equal(edgetopo.Box{MinLat: 0, MaxLat: 4, MinLon: -4, MaxLon: 0}, s.Extent)
}

func TestSummarizeRootOnly(t *testing.T) {
	chk := require.New(t)
	config := edgetopo.DefaultConfig
	config.Count = 1
	nodes, err := edgetopo.Generate(&config, edgetopo.NewSource(0))
	chk.NoError(err)

	s := edgetopo.Summarize(nodes)
	chk.Equal(1, s.Count)
	chk.Zero(s.MaxDepth)
	chk.Empty(s.ByBlock)
	chk.Equal("", s.Blocks())
	chk.Equal(edgetopo.Box{}, s.Extent)
}

func TestSummarizeBrokenTopology(t *testing.T) {
	nodes := smallTopology()
	nodes[3].Parent = 99
	require.Equal(t, -1, edgetopo.Summarize(nodes).MaxDepth)
}
