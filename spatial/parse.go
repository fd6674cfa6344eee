// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"regexp"
	"strconv"
	"strings"
)

// The grammars are tried in a fixed order and the first match wins. All
// four patterns search for a match anywhere in the input rather than
// anchoring to the whole string; a sexagesimal string that happens to
// contain a decimal-looking fragment is therefore routed to the decimal
// grammar. Existing users depend on this order, so it stays as is.
var (
	// 47.602050, -122.324194
	decimalPattern = regexp.MustCompile(`(-?\d+\.\d+)[,\s]+(-?\d+\.\d+)`)

	// N 47° 36' 7.38" W 122° 19' 27.36"
	dmsPattern = regexp.MustCompile(`(?i)([NS])\s*(\d+)[°\s]+(\d+)['′\s]+(\d+\.?\d*)["″]?\s*,?\s*([EW])\s*(\d+)[°\s]+(\d+)['′\s]+(\d+\.?\d*)["″]?`)

	// N 47° 36.123' W 122° 19.456'
	ddmPattern = regexp.MustCompile(`(?i)([NS])\s*(\d+)[°\s]+(\d+\.?\d*)['\s]+([EW])\s*(\d+)[°\s]+(\d+\.?\d*)['\s]+`)

	// N 47° 36.123 W 122° 19.456 (apostrophes omitted)
	bareDdmPattern = regexp.MustCompile(`(?i)([NS])\s*(\d+)[°\s]+(\d+\.?\d*)\s+([EW])\s*(\d+)[°\s]+(\d+\.?\d*)`)
)

// ParsePoint converts free-form coordinate text into decimal degrees.
// It recognizes, in priority order: a signed decimal pair, DMS, DDM with
// minute apostrophes, and DDM without them. When no grammar matches the
// returned error reports the offending input.
func ParsePoint(s string) (Point, error) {
	if m := decimalPattern.FindStringSubmatch(s); m != nil {
		lat, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Point{}, newError(KindParse, "could not parse coordinate string: "+s)
		}

		lng, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Point{}, newError(KindParse, "could not parse coordinate string: "+s)
		}

		return Point{Lat: lat, Lng: lng}, nil
	}

	if m := dmsPattern.FindStringSubmatch(s); m != nil {
		lat := sexagesimal(m[2], m[3], m[4])
		lng := sexagesimal(m[6], m[7], m[8])

		return applyHemispheres(lat, lng, m[1], m[5]), nil
	}

	if m := ddmPattern.FindStringSubmatch(s); m != nil {
		lat := sexagesimal(m[2], m[3], "")
		lng := sexagesimal(m[5], m[6], "")

		return applyHemispheres(lat, lng, m[1], m[4]), nil
	}

	if m := bareDdmPattern.FindStringSubmatch(s); m != nil {
		lat := sexagesimal(m[2], m[3], "")
		lng := sexagesimal(m[5], m[6], "")

		return applyHemispheres(lat, lng, m[1], m[4]), nil
	}

	return Point{}, newError(KindParse, "could not parse coordinate string: "+s)
}

// sexagesimal converts degree/minute/second captures to decimal degrees.
// The captures come from \d groups, so ParseFloat cannot fail; an empty
// seconds capture contributes zero.
func sexagesimal(deg, min, sec string) float64 {
	d, _ := strconv.ParseFloat(deg, 64)
	m, _ := strconv.ParseFloat(min, 64)

	v := d + m/60

	if sec != "" {
		s, _ := strconv.ParseFloat(sec, 64)
		v += s / 3600
	}

	return v
}

func applyHemispheres(lat, lng float64, latDir, lngDir string) Point {
	if strings.EqualFold(latDir, "S") {
		lat = -lat
	}

	if strings.EqualFold(lngDir, "W") {
		lng = -lng
	}

	return Point{Lat: lat, Lng: lng}
}
