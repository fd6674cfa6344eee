// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// PolygonFromGeoJSON extracts the outer ring of the first polygon found
// in a GeoJSON document. A bare Polygon geometry, a Feature, and a
// FeatureCollection (first feature) are accepted. GeoJSON positions are
// [lng, lat]; the returned points use the package's (lat, lng) order, and
// the ring's closing duplicate of the first vertex is dropped because
// PointInPolygon closes the ring itself.
func PolygonFromGeoJSON(data []byte) ([]Point, error) {
	doc := gjson.ParseBytes(data)

	geometry := doc
	switch doc.Get("type").String() {
	case "FeatureCollection":
		geometry = doc.Get("features.0.geometry")
	case "Feature":
		geometry = doc.Get("geometry")
	}

	if geometry.Get("type").String() != "Polygon" {
		return nil, fmt.Errorf("geojson: expected a Polygon geometry, got %q", geometry.Get("type").String())
	}

	ring := geometry.Get("coordinates.0").Array()
	if len(ring) < 4 {
		return nil, fmt.Errorf("geojson: polygon ring needs at least 4 positions, got %d", len(ring))
	}

	points := make([]Point, 0, len(ring))
	for _, pos := range ring {
		coords := pos.Array()
		if len(coords) < 2 {
			return nil, fmt.Errorf("geojson: malformed position %s", pos.Raw)
		}

		points = append(points, Point{Lat: coords[1].Float(), Lng: coords[0].Float()})
	}

	// Closed ring: strip the trailing repeat of the first vertex.
	if points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}

	return points, nil
}

// LoadPolygon reads a GeoJSON file and extracts its outer polygon ring.
func LoadPolygon(path string) ([]Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading polygon file: %w", err)
	}

	return PolygonFromGeoJSON(data)
}
