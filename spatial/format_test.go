// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPoint(t *testing.T) {
	p := Point{Lat: 47.602050, Lng: -122.324194}

	tests := []struct {
		format Format
		want   string
	}{
		{Decimal, "47.602050, -122.324194"},
		{DDM, "N 47° 36.123' W 122° 19.452'"},
		{DMS, `N 47° 36' 7.380" W 122° 19' 27.098"`},
	}

	for _, tc := range tests {
		t.Run(string(tc.format), func(t *testing.T) {
			got, err := FormatPoint(p, tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatPointSouthWestHemispheres(t *testing.T) {
	got, err := FormatPoint(Point{Lat: -33.867487, Lng: 151.206990}, DDM)
	require.NoError(t, err)
	assert.Equal(t, "S 33° 52.049' E 151° 12.419'", got)
}

func TestFormatPointUnsupported(t *testing.T) {
	_, err := FormatPoint(Point{}, Format("utm"))
	require.Error(t, err)
	assert.True(t, IsUnsupportedFormat(err))
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"decimal", "ddm", "dms"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("mgrs")
	assert.True(t, IsUnsupportedFormat(err))
}

// Formatting to decimal and parsing back must reproduce the value at the
// displayed precision.
func TestDecimalRoundTrip(t *testing.T) {
	points := []Point{
		{47.602050, -122.324194},
		{-33.867487, 151.206990},
		{0.000001, -0.000001},
		{89.999999, 179.999999},
		{-89.999999, -179.999999},
	}

	for _, p := range points {
		t.Run(p.String(), func(t *testing.T) {
			text, err := FormatPoint(p, Decimal)
			require.NoError(t, err)

			parsed, err := ParsePoint(text)
			require.NoError(t, err)

			again, err := FormatPoint(parsed, Decimal)
			require.NoError(t, err)

			assert.Equal(t, text, again)
			assert.InDelta(t, p.Lat, parsed.Lat, 5e-7)
			assert.InDelta(t, p.Lng, parsed.Lng, 5e-7)
		})
	}
}

// DDM output parses back to within half of the displayed minute precision.
func TestDDMRoundTrip(t *testing.T) {
	p := Point{Lat: 47.602050, Lng: -122.324194}

	text, err := FormatPoint(p, DDM)
	require.NoError(t, err)

	parsed, err := ParsePoint(text)
	require.NoError(t, err)

	// 0.001 minutes ≈ 1.7e-5 degrees.
	assert.InDelta(t, p.Lat, parsed.Lat, 1e-5)
	assert.InDelta(t, p.Lng, parsed.Lng, 1e-5)
}

func TestPointString(t *testing.T) {
	assert.Equal(t, fmt.Sprintf("%.6f, %.6f", 1.5, -2.25), Point{1.5, -2.25}.String())
}
