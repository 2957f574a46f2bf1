// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo

import (
	"fmt"
)

// Level is the depth class of a node in the resource hierarchy.
type Level int

const (
	LevelDataCenter Level = 0
	LevelProxy      Level = 1
	LevelGateway    Level = 2
)

func (l Level) String() string {
	switch l {
	case LevelDataCenter:
		return "DataCenter"
	case LevelProxy:
		return "Proxy"
	case LevelGateway:
		return "Gateway"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// RootID is the id of the data center, and NoParent is its parent.
const (
	RootID   = 0
	NoParent = -1
)

// Node is one simulated edge resource.
type Node struct {
	ID        int
	Latitude  float64
	Longitude float64
	Block     int
	Level     Level
	Parent    int
	State     string
	Details   string
}

// Location returns the node's position.
func (n Node) Location() Location {
	return Location{Latitude: n.Latitude, Longitude: n.Longitude}
}

// Format implements fmt.Formatter. %v prints a short name, %#v every field.
func (n Node) Format(f fmt.State, verb rune) {
	if verb != 'v' {
		_, _ = fmt.Fprintf(f, "%%!%c(edgetopo.Node=%d)", verb, n.ID)
		return
	}
	if f.Flag('#') {
		_, _ = fmt.Fprintf(f, "Node#%d{%v lat=%v lon=%v block=%d parent=%d state=%q details=%q}",
			n.ID, n.Level, n.Latitude, n.Longitude, n.Block, n.Parent, n.State, n.Details)
	} else {
		_, _ = fmt.Fprintf(f, "Node#%d", n.ID)
	}
}

func details(block int, level Level) string {
	if level == LevelDataCenter {
		return level.String()
	}
	return fmt.Sprintf("Block%d %v", block, level)
}
