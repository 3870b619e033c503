// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package boarduc

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the station board use case.
type Option func(uc *UseCase) error

// WithPollInterval option configures how often the Poll loop re-fetches
// the station status feed. This option may be passed to the New()
// function; without it, the board is polled every 30 seconds.
func WithPollInterval(interval time.Duration) Option {
	return func(uc *UseCase) error {
		if interval <= 0 {
			return fmt.Errorf(
				"poll interval (%d) is not positive", int64(interval),
			)
		}
		if uc.interval != 0 {
			return errors.New("poll interval is already configured")
		}
		uc.interval = interval
		return nil
	}
}

// WithClock option replaces the wall clock which stamps fetched
// snapshots, so tests can observe deterministic fetch times.
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

// WithTickerFactory option replaces the tick source of the Poll loop,
// so tests can drive polling deterministically without sleeping.
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
