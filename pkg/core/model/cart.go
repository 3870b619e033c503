// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CartItem models one line item of a cart, that is, a product together
// with a positive quantity. The identity of a line item is the ID of
// its product; a cart never holds two line items for the same product.
type CartItem struct {
	Product  `json:"product"`
	Quantity int `json:"quantity"`
}

// Subtotal computes the dual-currency subtotal of this line item as
// the unit price multiplied by the quantity in each currency.
func (i CartItem) Subtotal() Totals {
	return Totals{
		USD: i.Pricing.USD * float64(i.Quantity),
		LBP: i.Pricing.LBP * int64(i.Quantity),
	}
}

// Cart models an in-progress, unsubmitted customer selection as an
// ordered collection of line items. Similar to how the Car struct
// intentionally carried no ID, a Cart does not know its own session
// identifier; sessions are managed by the carts repository and the
// cart itself stays a plain value which can be copied, inspected, and
// mutated through its methods without any ambient state.
// All totals are derived by recomputation over the items; they are
// never cached inside the struct, so they cannot drift.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Totals carries the dual-currency sum of a cart or of a line item.
type Totals struct {
	USD float64 `json:"usd"`
	LBP int64   `json:"lbp"`
}

// lbpPrinter renders integer amounts with English thousands grouping,
// matching the locale-aware rendering of the upstream storefront.
var lbpPrinter = message.NewPrinter(language.English)

// GroupedInt renders n with thousands separators, e.g. "492,250".
func GroupedInt(n int64) string {
	return lbpPrinter.Sprintf("%d", n)
}

// FormatUSD renders the USD total with a dollar sign and exactly two
// decimal places, e.g. "$5.50".
func (t Totals) FormatUSD() string {
	return fmt.Sprintf("$%.2f", t.USD)
}

// FormatLBP renders the LBP total with thousands separators and the
// currency name, e.g. "492,250 LBP".
func (t Totals) FormatLBP() string {
	return GroupedInt(t.LBP) + " LBP"
}

// find returns the index of the line item holding the productID
// product, or -1 when the cart holds no such item.
func (c *Cart) find(productID string) int {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return i
		}
	}
	return -1
}

// Add inserts the given product with quantity one, or increments the
// quantity of its existing line item by exactly one. The updated
// quantity of the product is returned. No upper bound is enforced at
// this level; quantity limits are a use case policy.
func (c *Cart) Add(p Product) int {
	if i := c.find(p.ID); i >= 0 {
		c.Items[i].Quantity++
		return c.Items[i].Quantity
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
	return 1
}

// SetQuantity sets the quantity of the productID line item, removing
// the item entirely when quantity is zero or negative. A cart without
// such an item is left unchanged; a missing product is a silent no-op
// rather than an error.
func (c *Cart) SetQuantity(productID string, quantity int) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return
	}
	c.Items[i].Quantity = quantity
}

// Remove deletes the productID line item regardless of its quantity.
// A missing product is a silent no-op.
func (c *Cart) Remove(productID string) {
	if i := c.find(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Clear unconditionally empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// Quantity reports the current quantity of the productID line item,
// or zero when the cart holds no such item.
func (c *Cart) Quantity(productID string) int {
	if i := c.find(productID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// TotalItems computes the sum of quantities over all line items. This
// is the number shown on a cart badge, not the count of distinct
// products.
func (c *Cart) TotalItems() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Quantity
	}
	return total
}

// TotalPrice computes the dual-currency total of the cart as the sum
// of unit price multiplied by quantity over all line items, computed
// independently for each currency.
func (c *Cart) TotalPrice() Totals {
	var t Totals
	for i := range c.Items {
		s := c.Items[i].Subtotal()
		t.USD += s.USD
		t.LBP += s.LBP
	}
	return t
}

// Clone returns a deep copy of the cart, so a snapshot may be handed
// to callers without sharing the items slice with the stored cart.
func (c *Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
