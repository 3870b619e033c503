// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package orderuc_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiclounge/loungeweb/pkg/adapter/memcart"
	"github.com/epiclounge/loungeweb/pkg/core/cerr"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/orderuc"
)

func sampleCart() model.Cart {
	cart := model.Cart{}
	coffee := model.Product{
		ID:      "p-coffee",
		Name:    "Coffee",
		Pricing: model.Pricing{USD: 2, LBP: 179000},
	}
	cart.Add(coffee)
	cart.Add(coffee)
	cart.Add(model.Product{
		ID:      "p-chips",
		Name:    "Chips",
		Pricing: model.Pricing{USD: 1.5, LBP: 134250},
	})
	return cart
}

func newUseCase(t *testing.T, opts ...orderuc.Option) *orderuc.UseCase {
	uc, err := orderuc.New(memcart.New(), "96170123456", opts...)
	require.NoError(t, err, "instantiating orders use case")
	return uc
}

func TestBuildMessage(t *testing.T) {
	uc := newUseCase(t)
	msg := uc.BuildMessage(sampleCart(), "Rami", "no ice please")
	expected := strings.Join([]string{
		"🎮 *EPIC LOUNGE ORDER*",
		"",
		"👤 *Customer:* Rami",
		"",
		"📋 *Order Details:*",
		"━━━━━━━━━━━━━━━━",
		"",
		"1. *Coffee*",
		"   • Quantity: 2",
		"   • Price: $2.00 / 179,000 LBP",
		"   • Subtotal: $4.00 / 358,000 LBP",
		"",
		"2. *Chips*",
		"   • Quantity: 1",
		"   • Price: $1.50 / 134,250 LBP",
		"   • Subtotal: $1.50 / 134,250 LBP",
		"",
		"━━━━━━━━━━━━━━━━",
		"💰 *TOTAL:*",
		"   • USD: $5.50",
		"   • LBP: 492,250",
		"",
		"📝 *Notes:* no ice please",
		"",
		"📍 Epic Lounge - Sidon, Lebanon",
	}, "\n")
	assert.Equal(t, expected, msg)
}

func TestBuildMessageOmitsBlankNameAndNotes(t *testing.T) {
	uc := newUseCase(t)
	msg := uc.BuildMessage(sampleCart(), "  ", "\t\n")
	assert.NotContains(t, msg, "Customer:")
	assert.NotContains(t, msg, "Notes:")
	assert.True(
		t, strings.HasPrefix(msg, "🎮 *EPIC LOUNGE ORDER*\n\n📋"),
		"name line must leave no gap behind",
	)
}

func TestBuildMessageCustomVenue(t *testing.T) {
	uc := newUseCase(t, orderuc.WithVenue("📍 Epic Lounge - Tyre"))
	msg := uc.BuildMessage(sampleCart(), "", "")
	assert.True(t, strings.HasSuffix(msg, "📍 Epic Lounge - Tyre"))
	assert.NotContains(t, msg, "Sidon")
}

func TestBuildLink(t *testing.T) {
	uc := newUseCase(t)
	link := uc.BuildLink("hello & welcome")
	assert.Equal(
		t,
		"https://wa.me/96170123456?text=hello+%26+welcome",
		link,
	)
}

func TestCheckoutClearsCart(t *testing.T) {
	ctx := context.Background()
	store := memcart.New()
	uc, err := orderuc.New(store, "96170123456")
	require.NoError(t, err)

	cid, err := store.Create(ctx)
	require.NoError(t, err)
	err = store.Mutate(ctx, cid, func(c *model.Cart) error {
		*c = sampleCart()
		return nil
	})
	require.NoError(t, err)

	h, err := uc.Checkout(ctx, cid, "Rami", "")
	require.NoError(t, err)
	assert.Contains(t, h.Message, "👤 *Customer:* Rami")
	assert.True(t, strings.HasPrefix(
		h.Link, "https://wa.me/96170123456?text=",
	))
	assert.Contains(t, h.Link, "Rami")
	assert.NotContains(
		t, h.Link, " ", "link must carry an escaped message",
	)

	err = store.View(ctx, cid, func(c *model.Cart) error {
		assert.Empty(t, c.Items, "checkout must reset the cart")
		return nil
	})
	require.NoError(t, err)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := memcart.New()
	uc, err := orderuc.New(store, "96170123456")
	require.NoError(t, err)

	cid, err := store.Create(ctx)
	require.NoError(t, err)
	h, err := uc.Checkout(ctx, cid, "", "")
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, 400, cErr.HTTPStatusCode)
	assert.Zero(t, h)
}

func TestNewRequiresDestination(t *testing.T) {
	_, err := orderuc.New(memcart.New(), "")
	assert.Error(t, err)
}
