// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cartuc_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiclounge/loungeweb/pkg/adapter/memcart"
	"github.com/epiclounge/loungeweb/pkg/core/cerr"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/cartuc"
)

func soda() model.Product {
	return model.Product{
		ID:      "p-soda",
		Name:    "Soda",
		Pricing: model.Pricing{USD: 1, LBP: 89500},
	}
}

func newUseCase(
	t *testing.T, opts ...cartuc.Option,
) (*cartuc.UseCase, uuid.UUID) {
	uc, err := cartuc.New(memcart.New(), opts...)
	require.NoError(t, err, "instantiating carts use case")
	cid, err := uc.Create(context.Background())
	require.NoError(t, err, "opening cart session")
	return uc, cid
}

func TestCartLifecycle(t *testing.T) {
	ctx := context.Background()
	uc, cid := newUseCase(t)

	cart, err := uc.Get(ctx, cid)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = uc.AddItem(ctx, cid, soda())
	require.NoError(t, err)
	assert.Equal(t, 1, cart.TotalItems())

	cart, err = uc.AddItem(ctx, cid, soda())
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Quantity("p-soda"))

	cart, err = uc.UpdateQuantity(ctx, cid, "p-soda", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Quantity("p-soda"))

	cart, err = uc.RemoveItem(ctx, cid, "p-soda")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = uc.AddItem(ctx, cid, soda())
	require.NoError(t, err)
	require.NoError(t, uc.Clear(ctx, cid))
	cart, err = uc.Get(ctx, cid)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartSilentNoOps(t *testing.T) {
	ctx := context.Background()
	uc, cid := newUseCase(t)
	_, err := uc.AddItem(ctx, cid, soda())
	require.NoError(t, err)

	cart, err := uc.UpdateQuantity(ctx, cid, "p-missing", 3)
	require.NoError(t, err, "missing product is not an error")
	assert.Equal(t, 1, cart.TotalItems())

	cart, err = uc.RemoveItem(ctx, cid, "p-missing")
	require.NoError(t, err, "missing product is not an error")
	assert.Equal(t, 1, cart.TotalItems())

	cart, err = uc.UpdateQuantity(ctx, cid, "p-soda", 0)
	require.NoError(t, err, "zero quantity removes the item")
	assert.Empty(t, cart.Items)
}

func TestCartUnknownSession(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUseCase(t)
	missing := uuid.New()

	_, err := uc.Get(ctx, missing)
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, 404, cErr.HTTPStatusCode)

	_, err = uc.AddItem(ctx, missing, soda())
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, 404, cErr.HTTPStatusCode)
}

func TestCartMaxQuantity(t *testing.T) {
	ctx := context.Background()
	uc, cid := newUseCase(t, cartuc.WithMaxQuantity(2))

	_, err := uc.AddItem(ctx, cid, soda())
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, cid, soda())
	require.NoError(t, err)

	_, err = uc.AddItem(ctx, cid, soda())
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, 400, cErr.HTTPStatusCode)

	_, err = uc.UpdateQuantity(ctx, cid, "p-soda", 3)
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, 400, cErr.HTTPStatusCode)

	// a rejected mutation leaves the cart untouched
	cart, err := uc.Get(ctx, cid)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Quantity("p-soda"))
}

func TestCartInvalidOption(t *testing.T) {
	_, err := cartuc.New(
		memcart.New(), cartuc.WithMaxQuantity(-1),
	)
	assert.Error(t, err)
}
