// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package griduc contains the station grid UseCase which maps the
// design-time layout slots onto a canvas, visually encodes the live
// station statuses, and answers pointer hit-tests against the drawn
// glyphs. Rendering is expressed as scene construction: every frame
// is computed as a list of glyph draw operations from the canvas size,
// the layout, one status feed snapshot, the hovered station, and the
// current time. The continuous redraw cadence of a display surface is
// modeled by the Run loop, which recomputes the occupied-state pulse
// phase from the clock on every tick even when no input changes, and
// which stops deterministically with its context.
package griduc

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/epiclounge/loungeweb/pkg/core/model"
)

// Per-status glyph colors together with their glow variants.
// Stations with an unrecognized status take the available colors,
// since only the occupied and maintenance states override them.
const (
	colorAvailable   = "#00CED1"
	colorOccupied    = "#FF4081"
	colorMaintenance = "#FFA726"

	glowAvailable   = "rgba(0,206,209,0.8)"
	glowOccupied    = "rgba(255,64,129,0.8)"
	glowMaintenance = "rgba(255,167,38,0.8)"
)

// hoverScale is the enlargement factor of a glyph while its station is
// hovered.
const hoverScale = 1.1

// pulsePeriod divides the wall-clock milliseconds when computing the
// sinusoidal pulse phase of occupied stations.
const pulsePeriod = 500.0

// Size carries the pixel dimensions of the rendering surface.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Glyph is one station draw operation: a resolved station placed at a
// pixel position with its visual encoding. PulseAlpha is zero for all
// stations except occupied ones, which carry the current opacity of
// their pulse outline.
type Glyph struct {
	Station    model.Station `json:"station"`
	X          float64       `json:"x"`
	Y          float64       `json:"y"`
	Rotation   float64       `json:"rotation"`
	Size       float64       `json:"size"`
	Scale      float64       `json:"scale"`
	Color      string        `json:"color"`
	Glow       string        `json:"glow"`
	Hovered    bool          `json:"hovered"`
	PulseAlpha float64       `json:"pulseAlpha,omitempty"`
}

// FrameFunc consumes one rendered frame of the grid.
type FrameFunc func(now time.Time, scene []Glyph)

// TickerFactory creates a tick source with the given period together
// with a function which releases it. It exists so tests can drive the
// Run loop with a manual tick channel instead of the wall clock.
type TickerFactory func(d time.Duration) (<-chan time.Time, func())

// UseCase represents a station grid use case. It holds the static
// layout and the rendering settings. The layout never changes at
// runtime; which slots are drawn is decided per frame by the status
// feed snapshot.
type UseCase struct {
	layout []model.Slot

	glyphSize     float64
	frameInterval time.Duration
	clock         func() time.Time
	ticker        TickerFactory
}

// New instantiates a station grid use case over the given layout.
// The layout is validated once here, so slots are known to be unique
// and inside the percentage plane for the lifetime of the use case.
// Optional parameters are passed as a series of functional options.
func New(layout []model.Slot, opts ...Option) (*UseCase, error) {
	if err := model.ValidateLayout(layout); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	uc := &UseCase{layout: layout}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.glyphSize == 0 {
		uc.glyphSize = 60
	}
	if uc.frameInterval == 0 {
		uc.frameInterval = time.Second / 60
	}
	if uc.clock == nil {
		uc.clock = time.Now
	}
	if uc.ticker == nil {
		uc.ticker = func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		}
	}
	return uc, nil
}

// Layout returns the configured layout slots.
func (grid *UseCase) Layout() []model.Slot {
	return grid.layout
}

// statusColors maps a station status to its glyph and glow colors.
func statusColors(s model.StationStatus) (color, glow string) {
	switch s {
	case model.StationStatusOccupied:
		return colorOccupied, glowOccupied
	case model.StationStatusMaintenance:
		return colorMaintenance, glowMaintenance
	default:
		return colorAvailable, glowAvailable
	}
}

// pulseAlpha computes the opacity of the occupied pulse outline at the
// given instant, oscillating sinusoidally between 0.4 and 1.0.
func pulseAlpha(now time.Time) float64 {
	return math.Sin(float64(now.UnixMilli())/pulsePeriod)*0.3 + 0.7
}

// Scene use case renders one frame: every layout slot whose station
// number resolves against the ix feed snapshot yields a glyph at its
// pixel position, colored by status, scaled up while hovered, and
// pulse-outlined while occupied. Slots without a feed match are
// omitted silently; they are neither drawn nor reported as errors.
// Scene is pure: the frame instant is an explicit argument, so callers
// and tests control the pulse phase.
func (grid *UseCase) Scene(
	size Size, ix model.StationIndex, hovered string, now time.Time,
) []Glyph {
	scene := make([]Glyph, 0, len(grid.layout))
	for _, slot := range grid.layout {
		station, ok := ix.Resolve(slot.Station)
		if !ok {
			continue
		}
		color, glow := statusColors(station.Status)
		g := Glyph{
			Station:  station,
			X:        size.Width * slot.X / 100,
			Y:        size.Height * slot.Y / 100,
			Rotation: slot.Rotation,
			Size:     grid.glyphSize,
			Scale:    1,
			Color:    color,
			Glow:     glow,
		}
		if hovered != "" && hovered == station.Number {
			g.Hovered = true
			g.Scale = hoverScale
		}
		if station.Status == model.StationStatusOccupied {
			g.PulseAlpha = pulseAlpha(now)
		}
		scene = append(scene, g)
	}
	return scene
}

// HitTest use case reports which station, if any, the (x, y) pointer
// position falls on: for each layout slot with a resolved status, the
// Euclidean distance from the pointer to the slot center is compared
// against the glyph size and the first slot within that radius wins.
// Overlapping hit regions are not deduplicated; layout iteration order
// decides, which is an accepted imprecision of the sparse layouts this
// system draws. A pointer hitting no slot yields a false result, never
// an error.
func (grid *UseCase) HitTest(
	size Size, x, y float64, ix model.StationIndex,
) (model.Station, bool) {
	for _, slot := range grid.layout {
		station, ok := ix.Resolve(slot.Station)
		if !ok {
			continue
		}
		cx := size.Width * slot.X / 100
		cy := size.Height * slot.Y / 100
		if math.Hypot(x-cx, y-cy) < grid.glyphSize {
			return station, true
		}
	}
	return model.Station{}, false
}

// Run use case drives the continuous rendering loop: it renders one
// frame immediately and then once per frame interval until the ctx
// context is cancelled, which releases the tick source and returns
// nil. The src function supplies the feed snapshot and hovered station
// for each frame; the frame function receives the computed scene.
// The loop never terminates on its own because the occupied-state
// pulse animation must keep running even without new input.
func (grid *UseCase) Run(
	ctx context.Context,
	size Size,
	src func() (ix model.StationIndex, hovered string),
	frame FrameFunc,
) error {
	render := func() {
		ix, hovered := src()
		now := grid.clock()
		frame(now, grid.Scene(size, ix, hovered, now))
	}
	render()
	ticks, stop := grid.ticker(grid.frameInterval)
	defer stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			render()
		}
	}
}
