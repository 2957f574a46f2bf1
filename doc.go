// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package edgetopo generates synthetic edge-computing resource topologies for
// fog and edge placement simulations. A topology is a flat, id-ordered list of
// nodes forming a tree: a single data center at the root, proxies that report
// directly to the data center, and gateways that report to any node created
// before them.
//
// Generation is a pure function of a [Config] and a random source. Given the
// same seed and configuration, [Generate] always produces the same nodes, so
// two runs can be written out and compared row by row.
//
// Beyond generation, the package defines the tabular row shape used to persist
// a topology ([Header], [Node.Record], [WriteTable], [ReadTable]), checks the
// structural invariants of a topology ([Validate], [Depths]), translates
// coordinates between cities ([Location.Shift]), and answers simple spatial
// queries over a set of nodes ([NodesNear], [Nearest]).
package edgetopo
