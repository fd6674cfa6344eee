// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircumcenterRightTriangle(t *testing.T) {
	// The circumcenter of a right triangle is the midpoint of the
	// hypotenuse.
	center, err := Circumcenter(Point{0, 0}, Point{0, 2}, Point{2, 0})
	require.NoError(t, err)
	assert.Equal(t, Point{Lat: 1, Lng: 1}, center)
}

func TestCircumcenterEquidistance(t *testing.T) {
	p1 := Point{47.1, -122.3}
	p2 := Point{47.4, -122.1}
	p3 := Point{47.2, -121.9}

	center, err := Circumcenter(p1, p2, p3)
	require.NoError(t, err)

	planar := func(a, b Point) float64 {
		return math.Hypot(a.Lat-b.Lat, a.Lng-b.Lng)
	}

	d1 := planar(center, p1)
	d2 := planar(center, p2)
	d3 := planar(center, p3)

	assert.InDelta(t, d1, d2, 1e-9)
	assert.InDelta(t, d1, d3, 1e-9)
}

func TestCircumcenterCollinear(t *testing.T) {
	_, err := Circumcenter(Point{0, 0}, Point{1, 1}, Point{2, 2})
	require.Error(t, err)
	assert.True(t, IsCollinear(err))

	// Nearly collinear within the tolerance also fails.
	_, err = Circumcenter(Point{0, 0}, Point{1, 1}, Point{2, 2 + 1e-12})
	assert.True(t, IsCollinear(err))
}

func TestCircumradius(t *testing.T) {
	p1 := Point{0, 0}
	p2 := Point{0, 2}
	p3 := Point{2, 0}

	r, err := Circumradius(p1, p2, p3, Kilometers)
	require.NoError(t, err)

	// The radius is the haversine distance from (1,1) to any vertex.
	want, err := Distance(Point{1, 1}, p1, Kilometers)
	require.NoError(t, err)

	assert.InDelta(t, want, r, 1e-9)
}

func TestCircumradiusCollinear(t *testing.T) {
	_, err := Circumradius(Point{0, 0}, Point{1, 1}, Point{2, 2}, Kilometers)
	assert.True(t, IsCollinear(err))
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   Point
	}{
		{"single point", []Point{{40, -75}}, Point{40, -75}},
		{"pair", []Point{{40, -75}, {42, -70}}, Point{41, -72.5}},
		{"triangle", []Point{{0, 0}, {3, 0}, {0, 3}}, Point{1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Centroid(tc.points)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Centroid mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCentroidEmpty(t *testing.T) {
	_, err := Centroid(nil)
	require.Error(t, err)
	assert.True(t, IsEmptyInput(err))
}

func TestMidpoint(t *testing.T) {
	assert.Equal(t, Point{41, -72.5}, Midpoint(Point{40, -75}, Point{42, -70}))
	assert.Equal(t, Point{0, 0}, Midpoint(Point{-1, -1}, Point{1, 1}))
}

func TestBoundingBox(t *testing.T) {
	points := []Point{
		{47.1, -122.3},
		{47.9, -122.9},
		{47.5, -121.7},
	}

	minCorner, maxCorner, err := BoundingBox(points)
	require.NoError(t, err)

	if diff := cmp.Diff(Point{47.1, -122.9}, minCorner); diff != "" {
		t.Errorf("min corner mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(Point{47.9, -121.7}, maxCorner); diff != "" {
		t.Errorf("max corner mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundingBoxSinglePoint(t *testing.T) {
	minCorner, maxCorner, err := BoundingBox([]Point{{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, Point{1, 2}, minCorner)
	assert.Equal(t, Point{1, 2}, maxCorner)
}

func TestBoundingBoxEmpty(t *testing.T) {
	_, _, err := BoundingBox(nil)
	require.Error(t, err)
	assert.True(t, IsEmptyInput(err))
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}

	tests := []struct {
		name    string
		point   Point
		polygon []Point
		want    bool
	}{
		{"inside square", Point{5, 5}, square, true},
		{"outside square", Point{15, 5}, square, false},
		{"outside other axis", Point{5, 15}, square, false},
		{"negative coordinates inside", Point{-5, -5}, []Point{{-10, -10}, {-10, 0}, {0, 0}, {0, -10}}, true},
		{"two vertices is not a polygon", Point{0, 0}, []Point{{-1, -1}, {1, 1}}, false},
		{"empty polygon", Point{0, 0}, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PointInPolygon(tc.point, tc.polygon))
		})
	}
}

func TestPointInConcavePolygon(t *testing.T) {
	// An L-shape: the notch at the top right is outside.
	l := []Point{{0, 0}, {0, 10}, {5, 10}, {5, 5}, {10, 5}, {10, 0}}

	assert.True(t, PointInPolygon(Point{2, 2}, l))
	assert.True(t, PointInPolygon(Point{2, 8}, l))
	assert.False(t, PointInPolygon(Point{8, 8}, l))
}

func TestTriangleArea(t *testing.T) {
	// Equilateral-ish triangle around the equator; side ≈ 111.195 km
	// gives a planar area of about 5355 km². Haversine sides keep the
	// result close to that at this scale.
	area, err := TriangleArea(Point{0, 0}, Point{1, 0}, Point{0.5, 0.866}, SquareKilometers)
	require.NoError(t, err)
	assert.InDelta(t, 5353.48, area, 0.5)
}

func TestTriangleAreaUnits(t *testing.T) {
	p1, p2, p3 := Point{0, 0}, Point{1, 0}, Point{0, 1}

	km2, err := TriangleArea(p1, p2, p3, SquareKilometers)
	require.NoError(t, err)

	mi2, err := TriangleArea(p1, p2, p3, SquareMiles)
	require.NoError(t, err)

	assert.InDelta(t, km2*0.621371*0.621371, mi2, 1e-6)
}

func TestTriangleAreaDegenerate(t *testing.T) {
	// Collinear points: Heron's radicand may go slightly negative from
	// floating error; the area must clamp to zero, never NaN.
	area, err := TriangleArea(Point{0, 0}, Point{0, 0.001}, Point{0, 0.002}, SquareKilometers)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(area))
	assert.InDelta(t, 0, area, 1e-6)
}

func TestOrthocenter(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Point
		want       Point
	}{
		{
			// Right angle at the origin: the orthocenter is that vertex.
			name: "right triangle",
			p1:   Point{0, 0}, p2: Point{4, 0}, p3: Point{0, 3},
			want: Point{0, 0},
		},
		{
			name: "isoceles",
			p1:   Point{0, 0}, p2: Point{4, 0}, p3: Point{2, 3},
			want: Point{2, 4.0 / 3.0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Orthocenter(tc.p1, tc.p2, tc.p3)
			assert.InDelta(t, tc.want.Lat, got.Lat, 1e-9)
			assert.InDelta(t, tc.want.Lng, got.Lng, 1e-9)
		})
	}
}

// The altitudes of an acute scalene triangle meet in one point; check
// against the analytic orthocenter.
func TestOrthocenterScalene(t *testing.T) {
	p1 := Point{1, 1}
	p2 := Point{5, 2}
	p3 := Point{2, 6}

	got := Orthocenter(p1, p2, p3)

	// The orthocenter satisfies (H-p1)·(p3-p2) = 0 and (H-p2)·(p3-p1) = 0.
	dot1 := (got.Lat-p1.Lat)*(p3.Lat-p2.Lat) + (got.Lng-p1.Lng)*(p3.Lng-p2.Lng)
	dot2 := (got.Lat-p2.Lat)*(p3.Lat-p1.Lat) + (got.Lng-p2.Lng)*(p3.Lng-p1.Lng)

	assert.InDelta(t, 0, dot1, 1e-9)
	assert.InDelta(t, 0, dot2, 1e-9)
}
