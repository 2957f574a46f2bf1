// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo_test

import (
	"testing"

	"github.com/petenewcomb/edgetopo-go"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestMelbourneToDublin(t *testing.T) {
	chk := require.New(t)
	flinders := edgetopo.Location{Latitude: -37.81349283433532, Longitude: 144.952370512958}
	dublin := edgetopo.Location{Latitude: 53.338711015192935, Longitude: -6.272593768597314}

	o := edgetopo.OffsetBetween(flinders, dublin)
	chk.InDelta(edgetopo.MelbourneToDublin.Latitude, o.Latitude, 1e-9)
	chk.InDelta(edgetopo.MelbourneToDublin.Longitude, o.Longitude, 1e-9)

	got := flinders.Shift(edgetopo.MelbourneToDublin)
	chk.InDelta(dublin.Latitude, got.Latitude, 1e-9)
	chk.InDelta(dublin.Longitude, got.Longitude, 1e-9)
}

func TestShiftAll(t *testing.T) {
	chk := require.New(t)
	locs := []edgetopo.Location{{Latitude: 1, Longitude: 2}, {Latitude: -3, Longitude: 4}}
	shifted := edgetopo.ShiftAll(locs, edgetopo.Offset{Latitude: 10, Longitude: -1})
	chk.Equal([]edgetopo.Location{{Latitude: 11, Longitude: 1}, {Latitude: 7, Longitude: 3}}, shifted)
	chk.Equal(edgetopo.Location{Latitude: 1, Longitude: 2}, locs[0], "input must not be modified")
	chk.Empty(edgetopo.ShiftAll(nil, edgetopo.MelbourneToDublin))
}

func TestShiftRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := edgetopo.Location{
			Latitude:  rapid.Float64Range(-90, 90).Draw(t, "lat"),
			Longitude: rapid.Float64Range(-180, 180).Draw(t, "lon"),
		}
		o := edgetopo.Offset{
			Latitude:  rapid.Float64Range(-180, 180).Draw(t, "dlat"),
			Longitude: rapid.Float64Range(-360, 360).Draw(t, "dlon"),
		}
		back := l.Shift(o).Shift(edgetopo.Offset{Latitude: -o.Latitude, Longitude: -o.Longitude})
		chk := require.New(t)
		chk.InDelta(l.Latitude, back.Latitude, 1e-9)
		chk.InDelta(l.Longitude, back.Longitude, 1e-9)
	})
}

func TestBoxContains(t *testing.T) {
	chk := require.New(t)
	b := edgetopo.Box{MinLat: -1, MaxLat: 1, MinLon: 10, MaxLon: 20}
	corner := edgetopo.Location{Latitude: -1, Longitude: 20}
	chk.True(b.Contains(corner))
	chk.False(b.ContainsStrictly(corner))
	chk.True(b.ContainsStrictly(b.Center()))
	chk.Equal(edgetopo.Location{Latitude: 0, Longitude: 15}, b.Center())
	chk.False(b.Contains(edgetopo.Location{Latitude: 1.5, Longitude: 15}))
	chk.False(b.Contains(edgetopo.Location{Latitude: 0, Longitude: 9.99}))
}

func TestDistance(t *testing.T) {
	chk := require.New(t)
	a := edgetopo.Location{Latitude: -37.8136, Longitude: 144.9631}
	chk.Zero(edgetopo.Distance(a, a))

	// FiftyMeters is about 50m along each axis.
	north := a.Shift(edgetopo.Offset{Latitude: edgetopo.FiftyMeters.Latitude})
	east := a.Shift(edgetopo.Offset{Longitude: edgetopo.FiftyMeters.Longitude})
	chk.InDelta(50, edgetopo.Distance(a, north), 1)
	chk.InDelta(50, edgetopo.Distance(a, east), 1)
	chk.Equal(edgetopo.Distance(a, east), edgetopo.Distance(east, a))
}
