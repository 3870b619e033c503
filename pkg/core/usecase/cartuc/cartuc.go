// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cartuc contains the carts UseCase which maintains the set of
// items a customer intends to order. A cart has a single state, it is
// always editable; every mutation is applied synchronously and becomes
// immediately visible to the next read. Checkout is not part of this
// package; handing a cart off to the messaging channel is the orders
// use case (see the orderuc package).
package cartuc

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/epiclounge/loungeweb/pkg/core/cerr"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/repo"
)

// UseCase represents a carts use case. It holds the session carts
// repository instance and the carts use case specific settings.
type UseCase struct {
	carts repo.Carts

	maxQuantity int
}

// New instantiates a carts use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(c repo.Carts, opts ...Option) (*UseCase, error) {
	uc := &UseCase{carts: c}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// zero maxQuantity means unbounded, which is the default
	return uc, nil
}

// Create use case opens a new cart session and returns its id.
func (carts *UseCase) Create(ctx context.Context) (uuid.UUID, error) {
	return carts.carts.Create(ctx)
}

// Get use case returns a snapshot of the cid cart.
func (carts *UseCase) Get(
	ctx context.Context, cid uuid.UUID,
) (cart model.Cart, err error) {
	err = carts.carts.View(ctx, cid, func(c *model.Cart) error {
		cart = c.Clone()
		return nil
	})
	return
}

// AddItem use case adds the p product to the cid cart, incrementing
// the quantity of an existing line item by exactly one or inserting a
// new line item with quantity one. When a maximum quantity is
// configured and the increment would exceed it, the cart is left
// unchanged and a bad-request error is returned. The updated cart
// snapshot is returned.
func (carts *UseCase) AddItem(
	ctx context.Context, cid uuid.UUID, p model.Product,
) (cart model.Cart, err error) {
	err = carts.carts.Mutate(ctx, cid, func(c *model.Cart) error {
		if m := carts.maxQuantity; m > 0 && c.Quantity(p.ID)+1 > m {
			return cerr.BadRequest(fmt.Errorf(
				"quantity of product %q may not exceed %d", p.ID, m,
			))
		}
		c.Add(p)
		cart = c.Clone()
		return nil
	})
	if err != nil {
		cart = model.Cart{}
	}
	return
}

// UpdateQuantity use case sets the quantity of the productID line item
// in the cid cart. A non-positive quantity removes the line item
// entirely and an absent productID is a silent no-op; neither case is
// an error. The updated cart snapshot is returned.
func (carts *UseCase) UpdateQuantity(
	ctx context.Context, cid uuid.UUID, productID string, quantity int,
) (cart model.Cart, err error) {
	err = carts.carts.Mutate(ctx, cid, func(c *model.Cart) error {
		if m := carts.maxQuantity; m > 0 && quantity > m {
			return cerr.BadRequest(fmt.Errorf(
				"quantity of product %q may not exceed %d",
				productID, m,
			))
		}
		c.SetQuantity(productID, quantity)
		cart = c.Clone()
		return nil
	})
	if err != nil {
		cart = model.Cart{}
	}
	return
}

// RemoveItem use case deletes the productID line item from the cid
// cart regardless of its quantity. An absent productID is a silent
// no-op. The updated cart snapshot is returned.
func (carts *UseCase) RemoveItem(
	ctx context.Context, cid uuid.UUID, productID string,
) (cart model.Cart, err error) {
	err = carts.carts.Mutate(ctx, cid, func(c *model.Cart) error {
		c.Remove(productID)
		cart = c.Clone()
		return nil
	})
	if err != nil {
		cart = model.Cart{}
	}
	return
}

// Clear use case unconditionally empties the cid cart, keeping its
// session open for further additions.
func (carts *UseCase) Clear(ctx context.Context, cid uuid.UUID) error {
	return carts.carts.Mutate(ctx, cid, func(c *model.Cart) error {
		c.Clear()
		return nil
	})
}
