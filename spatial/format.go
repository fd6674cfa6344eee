// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"fmt"
	"math"
)

// Format selects the output notation for FormatPoint.
type Format string

const (
	// Decimal renders signed decimal degrees: "47.602050, -122.324194".
	Decimal Format = "decimal"
	// DDM renders degrees and decimal minutes: "N 47° 36.123' W 122° 19.456'".
	DDM Format = "ddm"
	// DMS renders degrees, minutes and seconds: `N 47° 36' 7.380" W …`.
	DMS Format = "dms"
)

// ParseFormat validates a notation name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Decimal, DDM, DMS:
		return f, nil
	default:
		return "", newError(KindUnsupportedFormat, "unsupported format: "+s)
	}
}

// FormatPoint renders a point in the requested notation. Decimal output
// keeps six fractional digits so that parsing it back reproduces the
// value to the displayed precision.
func FormatPoint(p Point, f Format) (string, error) {
	switch f {
	case Decimal:
		return fmt.Sprintf("%.6f, %.6f", p.Lat, p.Lng), nil
	case DDM:
		latDir, latDeg, latMin := splitDegrees(p.Lat, "N", "S")
		lngDir, lngDeg, lngMin := splitDegrees(p.Lng, "E", "W")

		return fmt.Sprintf("%s %d° %.3f' %s %d° %.3f'",
			latDir, latDeg, latMin, lngDir, lngDeg, lngMin), nil
	case DMS:
		latDir, latDeg, latMin := splitDegrees(p.Lat, "N", "S")
		lngDir, lngDeg, lngMin := splitDegrees(p.Lng, "E", "W")

		latWhole := int(latMin)
		lngWhole := int(lngMin)
		latSec := (latMin - float64(latWhole)) * 60
		lngSec := (lngMin - float64(lngWhole)) * 60

		return fmt.Sprintf("%s %d° %d' %.3f\" %s %d° %d' %.3f\"",
			latDir, latDeg, latWhole, latSec, lngDir, lngDeg, lngWhole, lngSec), nil
	default:
		return "", newError(KindUnsupportedFormat, "unsupported format: "+string(f))
	}
}

// splitDegrees derives the hemisphere letter from the sign, the whole
// degree part by truncation of the absolute value, and the remaining
// fraction as decimal minutes.
func splitDegrees(v float64, positive, negative string) (dir string, deg int, min float64) {
	dir = positive
	if v < 0 {
		dir = negative
	}

	abs := math.Abs(v)
	deg = int(abs)
	min = (abs - float64(deg)) * 60

	return dir, deg, min
}
