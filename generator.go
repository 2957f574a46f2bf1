// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo

import (
	"fmt"
	"math/rand/v2"
)

// NewSource returns the deterministic random source used for seeded runs.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// Generate returns config.Count nodes drawn from src. See [Generator] for the
// sampling rules.
func Generate(config *Config, src rand.Source) ([]Node, error) {
	g, err := NewGenerator(config, src)
	if err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

// Generator holds the state of one generation run: its parameters, its random
// source, and the id of the next node. Generators are not safe for concurrent
// use.
//
// The first node is always the data center at config.Root. Every later node is
// placed uniformly within config.Box, given a block in 1..config.BlockCount,
// and made a proxy or a gateway with equal probability. Proxies report to the
// data center. A gateway reports to a node chosen uniformly from the
// non-root nodes created before it, except for node 1, which has no such
// candidates and reports to the data center instead.
type Generator struct {
	config Config
	rng    *rand.Rand
	nextID int
}

// NewGenerator validates config and returns a generator positioned before the
// data center. The config is copied.
func NewGenerator(config *Config, src rand.Source) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	return &Generator{
		config: *config,
		rng:    rand.New(src),
	}, nil
}

// Remaining returns the number of nodes left to generate.
func (g *Generator) Remaining() int {
	return g.config.Count - g.nextID
}

// Next returns the next node, or false once config.Count nodes have been
// produced.
func (g *Generator) Next() (Node, bool) {
	if g.nextID >= g.config.Count {
		return Node{}, false
	}
	id := g.nextID
	g.nextID++
	if id == RootID {
		return g.root(), true
	}
	return g.child(id), true
}

// Generate returns all remaining nodes in id order.
func (g *Generator) Generate() []Node {
	nodes := make([]Node, 0, g.Remaining())
	for {
		n, ok := g.Next()
		if !ok {
			return nodes
		}
		nodes = append(nodes, n)
	}
}

func (g *Generator) root() Node {
	return Node{
		ID:        RootID,
		Latitude:  g.config.Root.Latitude,
		Longitude: g.config.Root.Longitude,
		Block:     0,
		Level:     LevelDataCenter,
		Parent:    NoParent,
		State:     g.config.State,
		Details:   details(0, LevelDataCenter),
	}
}

func (g *Generator) child(id int) Node {
	box := &g.config.Box
	n := Node{
		ID:        id,
		Latitude:  g.uniform(box.MinLat, box.MaxLat),
		Longitude: g.uniform(box.MinLon, box.MaxLon),
		Block:     1 + g.rng.IntN(g.config.BlockCount),
		Level:     LevelProxy + Level(g.rng.IntN(2)),
		State:     g.config.State,
	}
	switch {
	case n.Level == LevelProxy:
		n.Parent = RootID
	case id == 1:
		// Only the data center exists yet.
		n.Parent = RootID
	default:
		n.Parent = 1 + g.rng.IntN(id-1)
	}
	n.Details = details(n.Block, n.Level)
	return n
}

// uniform draws from [lo, hi].
func (g *Generator) uniform(lo, hi float64) float64 {
	return min(hi, lo+g.rng.Float64()*(hi-lo))
}
