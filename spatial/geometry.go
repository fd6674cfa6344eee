// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"math"
)

// The constructions in this file treat (lat, lng) as coordinates in a
// flat plane, which is a reasonable approximation for the small extents
// of a puzzle cache. Circumradius and TriangleArea are the exceptions:
// they measure lengths with the haversine Distance, so their output mixes
// planar and spherical geometry. That mix is part of the documented
// behavior and must not be "corrected" to one model or the other.

// collinearTolerance is the absolute tolerance on the signed triangle
// area below which three points are treated as collinear.
const collinearTolerance = 1e-10

// Circumcenter returns the center of the circle passing through the three
// points. It fails when the points are collinear, since no such circle
// exists.
func Circumcenter(p1, p2, p3 Point) (Point, error) {
	x1, y1 := p1.Lat, p1.Lng
	x2, y2 := p2.Lat, p2.Lng
	x3, y3 := p3.Lat, p3.Lng

	area := 0.5 * math.Abs(x1*(y2-y3)+x2*(y3-y1)+x3*(y1-y2))
	if area <= collinearTolerance {
		return Point{}, newError(KindCollinear, "the three points are collinear (lie on a straight line)")
	}

	d := 2 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))

	sq1 := x1*x1 + y1*y1
	sq2 := x2*x2 + y2*y2
	sq3 := x3*x3 + y3*y3

	ux := (sq1*(y2-y3) + sq2*(y3-y1) + sq3*(y1-y2)) / d
	uy := (sq1*(x3-x2) + sq2*(x1-x3) + sq3*(x2-x1)) / d

	return Point{Lat: ux, Lng: uy}, nil
}

// Circumradius returns the radius of the circumcircle, measured as the
// haversine distance from the planar circumcenter to the first point.
func Circumradius(p1, p2, p3 Point, unit DistanceUnit) (float64, error) {
	center, err := Circumcenter(p1, p2, p3)
	if err != nil {
		return 0, err
	}

	return Distance(center, p1, unit)
}

// Centroid returns the arithmetic mean of the points. It fails on an
// empty sequence.
func Centroid(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, newError(KindEmptyInput, "cannot calculate centroid of an empty list of points")
	}

	var sumLat, sumLng float64
	for _, p := range points {
		sumLat += p.Lat
		sumLng += p.Lng
	}

	n := float64(len(points))

	return Point{Lat: sumLat / n, Lng: sumLng / n}, nil
}

// Midpoint returns the axis-wise average of the two points. This is the
// planar midpoint, not the geodesic one.
func Midpoint(p1, p2 Point) Point {
	return Point{Lat: (p1.Lat + p2.Lat) / 2, Lng: (p1.Lng + p2.Lng) / 2}
}

// BoundingBox returns the south-west and north-east corners of the
// smallest axis-aligned box containing all points. It fails on an empty
// sequence.
func BoundingBox(points []Point) (minCorner, maxCorner Point, err error) {
	if len(points) == 0 {
		return Point{}, Point{}, newError(KindEmptyInput, "cannot calculate bounding box of an empty list of points")
	}

	minCorner = points[0]
	maxCorner = points[0]

	for _, p := range points[1:] {
		minCorner.Lat = math.Min(minCorner.Lat, p.Lat)
		minCorner.Lng = math.Min(minCorner.Lng, p.Lng)
		maxCorner.Lat = math.Max(maxCorner.Lat, p.Lat)
		maxCorner.Lng = math.Max(maxCorner.Lng, p.Lng)
	}

	return minCorner, maxCorner, nil
}

// PointInPolygon reports whether the point lies inside the polygon using
// the ray-casting parity test. The polygon closes implicitly from its
// last vertex back to the first. Fewer than three vertices is not a
// polygon and always yields false. Points exactly on an edge may be
// reported either way.
func PointInPolygon(point Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}

	x, y := point.Lat, point.Lng
	inside := false

	j := len(polygon) - 1
	for i := range polygon {
		xi, yi := polygon[i].Lat, polygon[i].Lng
		xj, yj := polygon[j].Lat, polygon[j].Lng

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}

		j = i
	}

	return inside
}

// TriangleArea returns the approximate surface area of the triangle. The
// three side lengths are measured with the haversine Distance and the
// area follows from Heron's formula, so the result degrades for very
// large triangles. Collinear points yield an area of zero even when
// floating error drives Heron's radicand slightly negative.
func TriangleArea(p1, p2, p3 Point, unit AreaUnit) (float64, error) {
	du := unit.Distance()

	a, err := Distance(p1, p2, du)
	if err != nil {
		return 0, err
	}

	b, err := Distance(p2, p3, du)
	if err != nil {
		return 0, err
	}

	c, err := Distance(p3, p1, du)
	if err != nil {
		return 0, err
	}

	s := (a + b + c) / 2

	radicand := s * (s - a) * (s - b) * (s - c)
	if radicand < 0 {
		radicand = 0
	}

	return math.Sqrt(radicand), nil
}

// Orthocenter returns the intersection of the triangle's altitudes,
// computed in the plane. Vertical and horizontal sides make the altitude
// slopes degenerate (zero or infinite) and are handled as explicit
// branches. Unlike Circumcenter there is no collinearity guard: collinear
// input produces Inf or NaN components, matching the long-standing
// behavior callers see today.
func Orthocenter(p1, p2, p3 Point) Point {
	x1, y1 := p1.Lat, p1.Lng
	x2, y2 := p2.Lat, p2.Lng
	x3, y3 := p3.Lat, p3.Lng

	// Slope of the altitude from p1, perpendicular to side p2-p3.
	var m1 float64
	switch {
	case x2 == x3:
		m1 = 0
	case y3 != y2:
		m1 = -(x3 - x2) / (y3 - y2)
	default:
		m1 = math.Inf(1)
	}

	// Slope of the altitude from p2, perpendicular to side p3-p1.
	var m2 float64
	switch {
	case x1 == x3:
		m2 = 0
	case y1 != y3:
		m2 = -(x1 - x3) / (y1 - y3)
	default:
		m2 = math.Inf(1)
	}

	b1 := y1 - m1*x1
	b2 := y2 - m2*x2

	var x, y float64

	switch {
	case math.IsInf(m1, 1):
		x = x1
		y = m2*x + b2
	case math.IsInf(m2, 1):
		x = x2
		y = m1*x + b1
	case m1 == 0:
		y = y1
		if m2 != 0 {
			x = (y - b2) / m2
		} else {
			x = x2
		}
	case m2 == 0:
		y = y2
		if m1 != 0 {
			x = (y - b1) / m1
		} else {
			x = x1
		}
	default:
		x = (b2 - b1) / (m1 - m2)
		y = m1*x + b1
	}

	return Point{Lat: x, Lng: y}
}
