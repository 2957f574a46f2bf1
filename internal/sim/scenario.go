// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"fmt"

	"github.com/petenewcomb/edgetopo-go"
	"pgregory.net/rapid"
)

type Scenario struct {
	Config edgetopo.Config
	Seed   uint64
}

// NewScenario draws a valid generation config and a seed.
func NewScenario(t *rapid.T, config *Config) *Scenario {
	lat := config.Latitude.Draw(t, "Box.MinLat")
	lon := config.Longitude.Draw(t, "Box.MinLon")
	box := edgetopo.Box{
		MinLat: lat,
		MaxLat: lat + config.Span.Draw(t, "Box.LatSpan"),
		MinLon: lon,
		MaxLon: lon + config.Span.Draw(t, "Box.LonSpan"),
	}
	s := &Scenario{
		Config: edgetopo.Config{
			Count:      config.Count.Draw(t, "Count"),
			Box:        box,
			BlockCount: config.BlockCount.Draw(t, "BlockCount"),
			State:      rapid.SampledFrom(config.States).Draw(t, "State"),
			Root:       box.Center(),
		},
		Seed: rapid.Uint64().Draw(t, "Seed"),
	}
	t.Logf("%#v", s)
	return s
}

// Generate runs the scenario.
func (s *Scenario) Generate() ([]edgetopo.Node, error) {
	return edgetopo.Generate(&s.Config, edgetopo.NewSource(s.Seed))
}

// Format implements fmt.Formatter for logging a scenario.
func (s *Scenario) Format(f fmt.State, verb rune) {
	if verb != 'v' {
		panic("unsupported verb")
	}
	if f.Flag('#') {
		c := &s.Config
		_, _ = fmt.Fprintf(f, "Scenario{seed=%d count=%d blocks=%d state=%q box=[%v,%v]x[%v,%v] root=(%v,%v)}",
			s.Seed, c.Count, c.BlockCount, c.State,
			c.Box.MinLat, c.Box.MaxLat, c.Box.MinLon, c.Box.MaxLon,
			c.Root.Latitude, c.Root.Longitude)
	} else {
		_, _ = fmt.Fprintf(f, "Scenario{seed=%d count=%d}", s.Seed, s.Config.Count)
	}
}

// DegenerateBox returns a copy of box whose minimum is not below its maximum
// on at least one axis, either by collapsing the axis to a point or by
// swapping its bounds.
func DegenerateBox(t *rapid.T, box edgetopo.Box) edgetopo.Box {
	breakAxis := func(lo, hi *float64, name string) {
		if (BiasedBoolConfig{Probability: 0.5}).Draw(t, name+".Collapse") {
			*hi = *lo
		} else {
			*lo, *hi = *hi, *lo
		}
	}
	latitude := (BiasedBoolConfig{Probability: 0.5}).Draw(t, "BreakLatitude")
	longitude := !latitude || (BiasedBoolConfig{Probability: 0.3}).Draw(t, "AlsoBreakLongitude")
	if latitude {
		breakAxis(&box.MinLat, &box.MaxLat, "Latitude")
	}
	if longitude {
		breakAxis(&box.MinLon, &box.MaxLon, "Longitude")
	}
	return box
}
