// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points computed
// with the haversine formula on a spherical Earth. Any pair of points is
// valid input; identical points yield 0.
func Distance(a, b Point, unit DistanceUnit) (float64, error) {
	factor, ok := fromKilometers[unit]
	if !ok {
		return 0, newError(KindUnsupportedUnit, "unsupported unit: "+string(unit))
	}

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c * factor, nil
}

// Project returns the destination reached by travelling the given
// distance from origin along the given initial bearing, using the
// spherical forward formula. Bearing is degrees clockwise from north:
// 0 = north, 90 = east.
func Project(origin Point, distance, bearingDeg float64, unit DistanceUnit) (Point, error) {
	factor, ok := toKilometers[unit]
	if !ok {
		return Point{}, newError(KindUnsupportedUnit, "unsupported unit: "+string(unit))
	}

	lat1 := radians(origin.Lat)
	lng1 := radians(origin.Lng)
	bearing := radians(bearingDeg)

	// Angular distance over the sphere.
	delta := distance * factor / earthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) +
		math.Cos(lat1)*math.Sin(delta)*math.Cos(bearing))

	lng2 := lng1 + math.Atan2(math.Sin(bearing)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))

	return Point{Lat: degrees(lat2), Lng: degrees(lng2)}, nil
}

// Bearing returns the initial great-circle bearing from a to b in degrees
// clockwise from north, normalized to [0, 360).
func Bearing(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLng := radians(b.Lng - a.Lng)

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)

	return math.Mod(degrees(math.Atan2(y, x))+360, 360)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
