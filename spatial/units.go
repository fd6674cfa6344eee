// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

// DistanceUnit selects the unit for distance results.
type DistanceUnit string

const (
	Kilometers    DistanceUnit = "km"
	Miles         DistanceUnit = "mi"
	NauticalMiles DistanceUnit = "nm"
)

// fromKilometers holds the fixed conversion factor applied to a distance
// computed in kilometers.
var fromKilometers = map[DistanceUnit]float64{
	Kilometers:    1.0,
	Miles:         0.621371,
	NauticalMiles: 0.539957,
}

// toKilometers converts a distance expressed in the unit back to
// kilometers. The factors match the ones geocaching listings use (1 mi =
// 1.60934 km, 1 nm = 1.852 km) rather than the reciprocals of
// fromKilometers, so round trips can drift in the last digits.
var toKilometers = map[DistanceUnit]float64{
	Kilometers:    1.0,
	Miles:         1.60934,
	NauticalMiles: 1.852,
}

// ParseDistanceUnit validates a unit name given on the command line.
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	u := DistanceUnit(s)
	if _, ok := fromKilometers[u]; !ok {
		return "", newError(KindUnsupportedUnit, "unsupported unit: "+s)
	}

	return u, nil
}

// Label returns the long-form unit name for display.
func (u DistanceUnit) Label() string {
	switch u {
	case Kilometers:
		return "kilometers"
	case Miles:
		return "miles"
	case NauticalMiles:
		return "nautical miles"
	default:
		return string(u)
	}
}

// AreaUnit selects the unit for area results. Each area unit is paired
// with the distance unit used to measure triangle side lengths.
type AreaUnit string

const (
	SquareKilometers    AreaUnit = "km²"
	SquareMiles         AreaUnit = "mi²"
	SquareNauticalMiles AreaUnit = "nm²"
)

var areaToDistance = map[AreaUnit]DistanceUnit{
	SquareKilometers:    Kilometers,
	SquareMiles:         Miles,
	SquareNauticalMiles: NauticalMiles,
}

// ParseAreaUnit validates an area unit name. Both the "km²" and the
// ASCII "km2" spellings are accepted.
func ParseAreaUnit(s string) (AreaUnit, error) {
	switch s {
	case "km2":
		s = string(SquareKilometers)
	case "mi2":
		s = string(SquareMiles)
	case "nm2":
		s = string(SquareNauticalMiles)
	}

	u := AreaUnit(s)
	if _, ok := areaToDistance[u]; !ok {
		return "", newError(KindUnsupportedUnit, "unsupported area unit: "+s)
	}

	return u, nil
}

// Distance returns the distance unit used for the sides of shapes
// measured in this area unit.
func (u AreaUnit) Distance() DistanceUnit {
	return areaToDistance[u]
}
