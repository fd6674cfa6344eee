// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"fmt"

	"github.com/uber/h3-go/v4"
)

// Cell returns the H3 cell token containing the point at the given
// resolution (0 coarsest, 15 finest). Puzzle checkers often compare
// candidate solutions by cell instead of raw coordinates.
func Cell(p Point, resolution int) (string, error) {
	if resolution < 0 || resolution > 15 {
		return "", fmt.Errorf("h3 resolution must be between 0 and 15, got %d", resolution)
	}

	cell, err := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lng), resolution)
	if err != nil {
		return "", fmt.Errorf("converting to h3 cell at resolution %d: %w", resolution, err)
	}

	return cell.String(), nil
}
