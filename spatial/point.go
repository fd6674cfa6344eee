// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

// Package spatial implements the coordinate core of gc-utils: parsing
// free-form coordinate strings into decimal degrees, formatting them back
// into the notations used by geocache listings, great-circle distance and
// waypoint projection, and the planar triangle/polygon constructions built
// on top of those.
package spatial

import "fmt"

// Point represents a geographical point with latitude and longitude in
// decimal degrees. It is a plain value; two Points are equal when their
// fields are equal.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String returns the point in signed decimal notation, six fractional
// digits per axis.
func (p Point) String() string {
	return fmt.Sprintf("%f, %f", p.Lat, p.Lng)
}
