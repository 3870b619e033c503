// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package boarduc contains the station board UseCase which mirrors the
// live station status feed of the external lounge API. The board is
// re-fetched on a fixed interval for as long as the polling context is
// alive and may additionally be refreshed manually, which is the only
// retry control this system offers. The latest snapshot is kept for
// readers; the feed remains the single source of truth and nothing
// here ever mutates a station status.
package boarduc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/epiclounge/loungeweb/pkg/core/log"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/repo"
)

// TickerFactory creates a tick source with the given period together
// with a function which releases it. It exists so tests can drive the
// polling loop with a manual tick channel instead of the wall clock.
type TickerFactory func(d time.Duration) (<-chan time.Time, func())

// UseCase represents a station board use case. It holds the stations
// read port, the polling settings, and the latest fetched snapshot.
type UseCase struct {
	stations repo.Stations

	interval time.Duration
	clock    func() time.Time
	ticker   TickerFactory

	mu        sync.RWMutex
	board     model.Board
	fetchedAt time.Time
	fetched   bool
}

// New instantiates a station board use case.
// Required parameters are passed individually while optional ones are
// passed as a series of functional options.
func New(s repo.Stations, opts ...Option) (*UseCase, error) {
	uc := &UseCase{stations: s}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.interval == 0 {
		uc.interval = 30 * time.Second
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

// Refresh use case fetches one fresh board snapshot, replacing the
// kept one on success. On failure the previous snapshot is left
// intact, so readers keep seeing the last known state while the error
// is surfaced to the caller.
func (board *UseCase) Refresh(
	ctx context.Context,
) (model.Board, error) {
	b, err := board.stations.Status(ctx)
	if err != nil {
		return model.Board{}, fmt.Errorf(
			"fetching station status: %w", err,
		)
	}
	board.mu.Lock()
	board.board = b
	board.fetchedAt = board.clock()
	board.fetched = true
	board.mu.Unlock()
	log.Debug(
		ctx, "station board refreshed",
		log.Count("stations", len(b.Stations)),
	)
	return b, nil
}

// Snapshot returns the latest fetched board together with its fetch
// time. The third result is false as long as no fetch has succeeded
// yet, in which case the other results are zero values.
func (board *UseCase) Snapshot() (model.Board, time.Time, bool) {
	board.mu.RLock()
	defer board.mu.RUnlock()
	return board.board, board.fetchedAt, board.fetched
}

// Poll use case fetches the board immediately and then re-fetches it
// once per configured interval until the ctx context is cancelled,
// which releases the tick source and returns nil. Fetch failures are
// logged and the loop carries on; there is no backoff, no jitter, and
// no coordination with manual Refresh calls.
func (board *UseCase) Poll(ctx context.Context) error {
	if _, err := board.Refresh(ctx); err != nil {
		log.Warn(ctx, "station board fetch failed", log.Err("err", err))
	}
	ticks, stop := board.ticker(board.interval)
	defer stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			if _, err := board.Refresh(ctx); err != nil {
				log.Warn(
					ctx, "station board fetch failed",
					log.Err("err", err),
				)
			}
		}
	}
}
