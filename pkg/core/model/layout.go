// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Slot models one design-time layout entry of the station grid: a
// fixed placement of a logical station number on a canvas-relative
// coordinate plane. The X and Y coordinates are percentages of the
// canvas width and height and the rotation is in degrees.
// Slots are static configuration, not runtime data; the live status
// feed decides which of them are actually drawn.
type Slot struct {
	Station  string  `json:"station" yaml:"station"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Rotation float64 `json:"rotation" yaml:"rotation"`
}

// ErrDuplicateSlot indicates that a layout assigns two slots to the
// same station number, which would make the mapping from stations to
// screen positions ambiguous.
var ErrDuplicateSlot = errors.New("duplicate layout slot")

// ValidateLayout checks that every slot names a station, that no two
// slots share a station number, and that all coordinates fall within
// the percentage plane. The first violation is reported with the
// offending slot index.
func ValidateLayout(layout []Slot) error {
	seen := make(map[string]struct{}, len(layout))
	for i, s := range layout {
		if s.Station == "" {
			return fmt.Errorf("slot %d: station number is empty", i)
		}
		if _, dup := seen[s.Station]; dup {
			return fmt.Errorf(
				"slot %d (%s): %w", i, s.Station, ErrDuplicateSlot,
			)
		}
		seen[s.Station] = struct{}{}
		if s.X < 0 || s.X > 100 || s.Y < 0 || s.Y > 100 {
			return fmt.Errorf(
				"slot %d (%s): coordinates (%g, %g) are out of the "+
					"0-100 percent range", i, s.Station, s.X, s.Y,
			)
		}
	}
	return nil
}

// DefaultLayout returns the floor plan of the lounge: a top row drawn
// left to right and a bottom row drawn right to left, facing each
// other. Deployments with a different floor plan override this list
// through the configuration file.
func DefaultLayout() []Slot {
	return []Slot{
		// top row
		{Station: "PC-005", X: 15, Y: 10, Rotation: 0},
		{Station: "PC-004", X: 30, Y: 10, Rotation: 0},
		{Station: "PC-003", X: 45, Y: 10, Rotation: 0},
		{Station: "PC-002", X: 60, Y: 10, Rotation: 0},
		{Station: "PC-001", X: 75, Y: 10, Rotation: 0},
		// bottom row
		{Station: "PC-010", X: 80, Y: 85, Rotation: 180},
		{Station: "PC-009", X: 65, Y: 85, Rotation: 180},
		{Station: "PC-008", X: 50, Y: 85, Rotation: 180},
		{Station: "PC-007", X: 35, Y: 85, Rotation: 180},
		{Station: "PC-006", X: 20, Y: 85, Rotation: 180},
	}
}
