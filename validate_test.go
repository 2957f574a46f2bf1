// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo_test

import (
	"slices"
	"testing"

	"github.com/petenewcomb/edgetopo-go"
	"github.com/petenewcomb/edgetopo-go/internal/sim"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// smallTopology is a data center, two proxies, and a three-gateway chain
// hanging off the second proxy.
func smallTopology() []edgetopo.Node {
	return []edgetopo.Node{
		{ID: 0, Level: edgetopo.LevelDataCenter, Parent: -1, Details: "DataCenter"},
		{ID: 1, Level: edgetopo.LevelProxy, Parent: 0, Block: 1, Details: "Block1 Proxy"},
		{ID: 2, Level: edgetopo.LevelProxy, Parent: 0, Block: 2, Details: "Block2 Proxy"},
		{ID: 3, Level: edgetopo.LevelGateway, Parent: 2, Block: 2, Details: "Block2 Gateway"},
		{ID: 4, Level: edgetopo.LevelGateway, Parent: 3, Block: 5, Details: "Block5 Gateway"},
		{ID: 5, Level: edgetopo.LevelGateway, Parent: 4, Block: 1, Details: "Block1 Gateway"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, edgetopo.Validate(smallTopology()))

	tests := []struct {
		name   string
		mutate func(nodes []edgetopo.Node) []edgetopo.Node
		want   string
	}{
		{"empty", func([]edgetopo.Node) []edgetopo.Node { return nil }, "no nodes"},
		{"root has parent", func(n []edgetopo.Node) []edgetopo.Node { n[0].Parent = 3; return n }, "Node#0 has parent 3"},
		{"root not first", func(n []edgetopo.Node) []edgetopo.Node { n[0].Level = edgetopo.LevelProxy; return n }, "Node#0 is a Proxy"},
		{"second root", func(n []edgetopo.Node) []edgetopo.Node { n[4].Level = edgetopo.LevelDataCenter; return n }, "second DataCenter"},
		{"proxy not under root", func(n []edgetopo.Node) []edgetopo.Node { n[2].Parent = 1; return n }, "Proxy Node#2 has parent 1"},
		{"gateway self parent", func(n []edgetopo.Node) []edgetopo.Node { n[5].Parent = 5; return n }, "Gateway Node#5 has parent 5"},
		{"gateway forward parent", func(n []edgetopo.Node) []edgetopo.Node { n[3].Parent = 4; return n }, "Gateway Node#3 has parent 4"},
		{"gateway orphan", func(n []edgetopo.Node) []edgetopo.Node { n[3].Parent = -1; return n }, "Gateway Node#3 has parent -1"},
		{"id gap", func(n []edgetopo.Node) []edgetopo.Node { return slices.Delete(n, 2, 3) }, "index 2 has id 3"},
		{"unknown level", func(n []edgetopo.Node) []edgetopo.Node { n[1].Level = 7; return n }, "unknown level 7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chk := require.New(t)
			err := edgetopo.Validate(tt.mutate(smallTopology()))
			chk.ErrorIs(err, edgetopo.ErrInvalidTopology)
			chk.ErrorContains(err, tt.want)
		})
	}
}

func TestDepths(t *testing.T) {
	chk := require.New(t)
	depths, err := edgetopo.Depths(smallTopology())
	chk.NoError(err)
	chk.Equal([]int{0, 1, 1, 2, 3, 4}, depths)

	depths, err = edgetopo.Depths(nil)
	chk.NoError(err)
	chk.Empty(depths)

	detached := smallTopology()
	detached[1].Parent = edgetopo.NoParent
	depths, err = edgetopo.Depths(detached)
	chk.NoError(err)
	chk.Equal(-1, depths[1])

	dangling := smallTopology()
	dangling[4].Parent = 42
	_, err = edgetopo.Depths(dangling)
	chk.ErrorIs(err, edgetopo.ErrInvalidTopology)
}

func TestGeneratedTopologyIsConnected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		chk := require.New(t)
		s := sim.NewScenario(t, &sim.DefaultConfig)
		nodes, err := s.Generate()
		chk.NoError(err)
		depths, err := edgetopo.Depths(nodes)
		chk.NoError(err)
		for _, n := range nodes {
			d := depths[n.ID]
			switch n.Level {
			case edgetopo.LevelDataCenter:
				chk.Zero(d)
			case edgetopo.LevelProxy:
				chk.Equal(1, d)
			default:
				chk.Equal(depths[n.Parent]+1, d, "%#v", n)
			}
		}
	})
}
