// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

var DefaultConfig = Config{
	Count:      BiasedIntConfig{Min: 1, Med: 20, Max: 400},
	BlockCount: BiasedIntConfig{Min: 1, Med: 12, Max: 64},
	Latitude:   BiasedFloatConfig{Min: -80, Med: -37.8, Max: 80},
	Longitude:  BiasedFloatConfig{Min: -170, Med: 144.9, Max: 170},
	Span:       BiasedFloatConfig{Min: 1e-6, Med: 0.02, Max: 5},
	States:     []string{"VIC", "NSW", "QLD", "Leinster"},
}

// Config bounds the scenarios drawn by NewScenario. Latitude and Longitude
// bound the south-west corner of the box; Span bounds its height and width.
type Config struct {
	Count      BiasedIntConfig
	BlockCount BiasedIntConfig
	Latitude   BiasedFloatConfig
	Longitude  BiasedFloatConfig
	Span       BiasedFloatConfig
	States     []string
}
