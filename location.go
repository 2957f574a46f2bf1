// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package edgetopo

import (
	"math"
)

// Location is a point in decimal degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Offset is a translation in decimal degrees.
type Offset struct {
	Latitude  float64
	Longitude float64
}

// MelbourneToDublin moves a point in the Melbourne CBD to the matching point in
// the Dublin city center. It was measured between two corresponding street
// corners and is used to reuse Melbourne user traces over Dublin.
var MelbourneToDublin = Offset{
	Latitude:  91.15220384952826,
	Longitude: -151.22496428155532,
}

// Shift returns l translated by o. No wrapping or clamping is applied.
func (l Location) Shift(o Offset) Location {
	return Location{
		Latitude:  l.Latitude + o.Latitude,
		Longitude: l.Longitude + o.Longitude,
	}
}

// ShiftAll returns a new slice holding each of locs translated by o.
func ShiftAll(locs []Location, o Offset) []Location {
	shifted := make([]Location, len(locs))
	for i, l := range locs {
		shifted[i] = l.Shift(o)
	}
	return shifted
}

// OffsetBetween returns the offset that moves from onto to.
func OffsetBetween(from, to Location) Offset {
	return Offset{
		Latitude:  to.Latitude - from.Latitude,
		Longitude: to.Longitude - from.Longitude,
	}
}

const earthRadiusMeters = 6371000

// Distance returns the approximate distance in meters between a and b using an
// equirectangular projection, which is accurate at city scale.
func Distance(a, b Location) float64 {
	phi := (a.Latitude + b.Latitude) / 2 * math.Pi / 180
	dx := (b.Longitude - a.Longitude) * math.Pi / 180 * math.Cos(phi)
	dy := (b.Latitude - a.Latitude) * math.Pi / 180
	return earthRadiusMeters * math.Hypot(dx, dy)
}

// Box is a latitude/longitude rectangle. Its bounds are inclusive.
type Box struct {
	MinLat float64
	MaxLat float64 `validate:"gtfield=MinLat"`
	MinLon float64
	MaxLon float64 `validate:"gtfield=MinLon"`
}

// MelbourneCBD is the rectangle covering the Melbourne central business
// district.
var MelbourneCBD = Box{
	MinLat: -37.820744,
	MaxLat: -37.809041,
	MinLon: 144.951955,
	MaxLon: 144.975705,
}

// Contains reports whether l lies within b, bounds included.
func (b Box) Contains(l Location) bool {
	return l.Latitude >= b.MinLat && l.Latitude <= b.MaxLat &&
		l.Longitude >= b.MinLon && l.Longitude <= b.MaxLon
}

// ContainsStrictly reports whether l lies within b, bounds excluded.
func (b Box) ContainsStrictly(l Location) bool {
	return l.Latitude > b.MinLat && l.Latitude < b.MaxLat &&
		l.Longitude > b.MinLon && l.Longitude < b.MaxLon
}

// Center returns the midpoint of b.
func (b Box) Center() Location {
	return Location{
		Latitude:  (b.MinLat + b.MaxLat) / 2,
		Longitude: (b.MinLon + b.MaxLon) / 2,
	}
}

func (b Box) finite() bool {
	for _, v := range [...]float64{b.MinLat, b.MaxLat, b.MinLon, b.MaxLon} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Radius holds the half-widths of a search window in decimal degrees.
type Radius struct {
	Latitude  float64
	Longitude float64
}

// FiftyMeters is a window of roughly 50m in each direction at Melbourne's
// latitude.
var FiftyMeters = Radius{
	Latitude:  0.0004495,
	Longitude: 0.0005705,
}

// Around returns the box centered on c that extends r in each direction.
func Around(c Location, r Radius) Box {
	return Box{
		MinLat: c.Latitude - r.Latitude,
		MaxLat: c.Latitude + r.Latitude,
		MinLon: c.Longitude - r.Longitude,
		MaxLon: c.Longitude + r.Longitude,
	}
}
