// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/epiclounge/loungeweb/pkg/core/model"
)

// Carts stores the transient session carts. Carts only live for the
// duration of one customer visit; nothing here survives a process
// restart and no implementation may add persistence.
// Both View and Mutate run the given function while holding a
// store-level guarantee that no concurrent mutation of the same cart
// is observed, so cart operations stay as race-free as they were in
// the single-threaded origin of this design.
type Carts interface {
	// Create allocates a new empty cart and returns its session id.
	Create(ctx context.Context) (uuid.UUID, error)

	// View runs fn with a read-only snapshot of the cid cart.
	// An unknown session id yields a cerr.NotFound error.
	View(
		ctx context.Context,
		cid uuid.UUID,
		fn func(cart *model.Cart) error,
	) error

	// Mutate runs fn with the cid cart; changes which fn applies to
	// the cart are kept if and only if fn returns nil.
	// An unknown session id yields a cerr.NotFound error.
	Mutate(
		ctx context.Context,
		cid uuid.UUID,
		fn func(cart *model.Cart) error,
	) error

	// Delete drops the cid cart session entirely. Deleting an unknown
	// session id is a no-op.
	Delete(ctx context.Context, cid uuid.UUID) error
}
