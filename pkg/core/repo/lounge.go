// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo contains the repository interfaces, defining the
// expectations of the use cases layer from the adapters layer. The
// read-only ports of this package front the external lounge API which
// is the single source of truth for products, exchange rates, and
// station statuses; this repository keeps no authoritative copy of
// that data. The Carts port fronts the transient session cart store.
// Implementations reside in the pkg/adapter layer and are provisioned
// by the configuration adapter.
package repo

import (
	"context"

	"github.com/epiclounge/loungeweb/pkg/core/model"
)

// Catalog is the read port for the lounge product catalog.
type Catalog interface {
	// Menu fetches all menu products. Transport failures and non-2xx
	// responses are reported as a cerr.Unavailable error; the product
	// list is consumed as-is without further validation.
	Menu(ctx context.Context) ([]model.Product, error)
}

// ExchangeRates is the read port for the published USD/LBP rate.
type ExchangeRates interface {
	// Current fetches the currently published exchange rate.
	Current(ctx context.Context) (model.ExchangeRate, error)
}

// Stations is the read port for the live station status feed.
type Stations interface {
	// Status fetches one snapshot of the station board, carrying the
	// per-station statuses together with the upstream aggregate stats.
	Status(ctx context.Context) (model.Board, error)
}
