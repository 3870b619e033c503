// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package griduc

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the station grid use case.
type Option func(uc *UseCase) error

// WithGlyphSize option configures the base pixel size of the station
// glyphs, which also acts as the hit-test radius. This option may be
// passed to the New() function; the default size suits a desktop
// canvas while smaller surfaces pass a smaller size.
func WithGlyphSize(size float64) Option {
	return func(uc *UseCase) error {
		if size <= 0 {
			return fmt.Errorf("glyph size (%g) is not positive", size)
		}
		if uc.glyphSize != 0 {
			return errors.New("glyph size is already configured")
		}
		uc.glyphSize = size
		return nil
	}
}

// WithFrameInterval option configures the cadence of the Run loop.
// Without it, frames are rendered at roughly sixty per second.
func WithFrameInterval(interval time.Duration) Option {
	return func(uc *UseCase) error {
		if interval <= 0 {
			return fmt.Errorf(
				"frame interval (%d) is not positive", int64(interval),
			)
		}
		if uc.frameInterval != 0 {
			return errors.New("frame interval is already configured")
		}
		uc.frameInterval = interval
		return nil
	}
}

// WithClock option replaces the wall clock which drives the pulse
// phase, so tests can render frames at chosen instants.
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCase) error {
		if clock == nil {
			return errors.New("clock may not be nil")
		}
		if uc.clock != nil {
			return errors.New("clock is already configured")
		}
		uc.clock = clock
		return nil
	}
}

// WithTickerFactory option replaces the tick source of the Run loop,
// so tests can drive frames deterministically without sleeping.
func WithTickerFactory(factory TickerFactory) Option {
	return func(uc *UseCase) error {
		if factory == nil {
			return errors.New("ticker factory may not be nil")
		}
		if uc.ticker != nil {
			return errors.New("ticker factory is already configured")
		}
		uc.ticker = factory
		return nil
	}
}
