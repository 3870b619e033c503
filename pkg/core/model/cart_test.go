// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiclounge/loungeweb/pkg/core/model"
)

func coffee() model.Product {
	return model.Product{
		ID:   "p-coffee",
		Name: "Coffee",
		Category: model.Category{
			ID: "c-hot", Name: "Hot Drinks",
		},
		Pricing: model.Pricing{USD: 2, LBP: 179000},
	}
}

func chips() model.Product {
	return model.Product{
		ID:   "p-chips",
		Name: "Chips",
		Category: model.Category{
			ID: "c-snacks", Name: "Snacks",
		},
		Pricing: model.Pricing{USD: 1.5, LBP: 134250},
	}
}

func TestCartAddIncrementsExistingItem(t *testing.T) {
	cart := &model.Cart{}
	assert.Equal(t, 1, cart.Add(coffee()))
	assert.Equal(t, 2, cart.Add(coffee()))
	assert.Equal(t, 1, cart.Add(chips()))
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Quantity("p-coffee"))
	assert.Equal(t, 1, cart.Quantity("p-chips"))
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCartTotalsAreRecomputedPerCurrency(t *testing.T) {
	cart := &model.Cart{}
	cart.Add(coffee())
	cart.Add(coffee())
	cart.Add(chips())
	totals := cart.TotalPrice()
	assert.InDelta(t, 5.5, totals.USD, 1e-9)
	assert.Equal(t, int64(492250), totals.LBP)
	assert.Equal(t, "$5.50", totals.FormatUSD())
	assert.Equal(t, "492,250 LBP", totals.FormatLBP())
}

func TestCartSetQuantity(t *testing.T) {
	cart := &model.Cart{}
	cart.Add(coffee())

	cart.SetQuantity("p-coffee", 5)
	assert.Equal(t, 5, cart.Quantity("p-coffee"))

	// missing products are silent no-ops
	cart.SetQuantity("p-missing", 3)
	assert.Len(t, cart.Items, 1)

	// zero and negative quantities remove the line item
	cart.SetQuantity("p-coffee", 0)
	assert.Zero(t, cart.Quantity("p-coffee"))
	cart.Add(coffee())
	cart.SetQuantity("p-coffee", -2)
	assert.Empty(t, cart.Items)
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := &model.Cart{}
	cart.Add(coffee())
	cart.Add(coffee())
	cart.Add(chips())

	cart.Remove("p-coffee")
	assert.Zero(t, cart.Quantity("p-coffee"))
	assert.Equal(t, 1, cart.TotalItems())

	cart.Remove("p-missing")
	assert.Len(t, cart.Items, 1)

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalItems())
	assert.Zero(t, cart.TotalPrice().USD)
	assert.Zero(t, cart.TotalPrice().LBP)
}

func TestCartCloneDoesNotShareItems(t *testing.T) {
	cart := &model.Cart{}
	cart.Add(coffee())
	snapshot := cart.Clone()
	cart.Add(coffee())
	cart.Add(chips())
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 1, snapshot.Items[0].Quantity)
}

func TestGroupByCategoryKeepsFirstSeenOrder(t *testing.T) {
	products := []model.Product{coffee(), chips(), {
		ID:   "p-latte",
		Name: "Latte",
		Category: model.Category{
			ID: "c-hot", Name: "Hot Drinks",
		},
		Pricing: model.Pricing{USD: 3.5, LBP: 313250},
	}}
	groups := model.GroupByCategory(products)
	require.Len(t, groups, 2)
	assert.Equal(t, "c-hot", groups[0].Category.ID)
	assert.Equal(t, "c-snacks", groups[1].Category.ID)
	require.Len(t, groups[0].Products, 2)
	assert.Equal(t, "p-coffee", groups[0].Products[0].ID)
	assert.Equal(t, "p-latte", groups[0].Products[1].ID)
}

func TestGroupedInt(t *testing.T) {
	assert.Equal(t, "0", model.GroupedInt(0))
	assert.Equal(t, "950", model.GroupedInt(950))
	assert.Equal(t, "89,500", model.GroupedInt(89500))
	assert.Equal(t, "1,790,000", model.GroupedInt(1790000))
}
