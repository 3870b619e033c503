// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package orderuc contains the orders UseCase which renders a cart
// into a checkout payload: a preformatted order message embedded into
// a deep link addressed to a fixed messaging destination. The handoff
// is fire-and-forget by design; this system never learns whether the
// message was actually delivered, so checkout has no order lifecycle.
// It only builds the payload and resets the cart.
// Payload construction is kept as pure functions over a cart snapshot,
// separate from the cart-clearing side effect, so the message and link
// formats stay unit-testable without any session state.
package orderuc

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/epiclounge/loungeweb/pkg/core/cerr"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/repo"
)

// messagingHost is the fixed host of the external messaging service
// which receives checkout payloads as pre-filled chat messages.
const messagingHost = "https://wa.me/"

// Default message fragments. The header and the divider mirror the
// storefront branding; the venue line closes every order message and
// may be overridden through the WithVenue option.
const (
	msgHeader    = "🎮 *EPIC LOUNGE ORDER*"
	msgDivider   = "━━━━━━━━━━━━━━━━"
	defaultVenue = "📍 Epic Lounge - Sidon, Lebanon"
)

// Handoff carries one rendered checkout payload: the order message
// text and the deep link which embeds it, URL-escaped, for the fixed
// messaging destination.
type Handoff struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// UseCase represents an orders use case. It holds the session carts
// repository instance (to reset a cart after its checkout) and the
// destination and venue settings of the checkout payload.
type UseCase struct {
	carts repo.Carts

	destination string
	venue       string
}

// New instantiates an orders use case. The destination is the fixed
// identifier of the messaging account which receives order messages;
// it is mandatory because a checkout link cannot be addressed without
// it. Optional parameters are passed as functional options.
func New(
	c repo.Carts, destination string, opts ...Option,
) (*UseCase, error) {
	if destination == "" {
		return nil, errors.New("destination may not be empty")
	}
	uc := &UseCase{carts: c, destination: destination}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.venue == "" {
		uc.venue = defaultVenue
	}
	return uc, nil
}

// BuildMessage renders the cart into the order message text: the
// header, an optional customer line, one numbered block per line item
// with its quantity, dual-currency unit price and subtotal, a
// dual-currency totals section, an optional notes line, and the fixed
// closing venue line. Name and notes are trimmed and their lines are
// omitted when they end up empty.
func (orders *UseCase) BuildMessage(
	cart model.Cart, name, notes string,
) string {
	var b strings.Builder
	b.WriteString(msgHeader + "\n\n")
	if name = strings.TrimSpace(name); name != "" {
		fmt.Fprintf(&b, "👤 *Customer:* %s\n\n", name)
	}
	b.WriteString("📋 *Order Details:*\n")
	b.WriteString(msgDivider + "\n\n")
	for i, item := range cart.Items {
		sub := item.Subtotal()
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, item.Name)
		fmt.Fprintf(&b, "   • Quantity: %d\n", item.Quantity)
		fmt.Fprintf(
			&b, "   • Price: $%.2f / %s LBP\n",
			item.Pricing.USD, model.GroupedInt(item.Pricing.LBP),
		)
		fmt.Fprintf(
			&b, "   • Subtotal: $%.2f / %s LBP\n\n",
			sub.USD, model.GroupedInt(sub.LBP),
		)
	}
	totals := cart.TotalPrice()
	b.WriteString(msgDivider + "\n")
	b.WriteString("💰 *TOTAL:*\n")
	fmt.Fprintf(&b, "   • USD: $%.2f\n", totals.USD)
	fmt.Fprintf(&b, "   • LBP: %s\n\n", model.GroupedInt(totals.LBP))
	if notes = strings.TrimSpace(notes); notes != "" {
		fmt.Fprintf(&b, "📝 *Notes:* %s\n\n", notes)
	}
	b.WriteString(orders.venue)
	return b.String()
}

// BuildLink URL-escapes the given message and embeds it into a deep
// link addressed to the configured messaging destination.
func (orders *UseCase) BuildLink(message string) string {
	return messagingHost + orders.destination +
		"?text=" + url.QueryEscape(message)
}

// Checkout use case renders the cid cart into its checkout payload and
// unconditionally clears the cart. Success of the external handoff is
// assumed; no confirmation exists, hence, the cart reset is not
// conditioned on any delivery state. Checking out an empty cart is
// rejected as a bad request, so an accidental double submit cannot
// produce an empty order message.
func (orders *UseCase) Checkout(
	ctx context.Context, cid uuid.UUID, name, notes string,
) (h Handoff, err error) {
	err = orders.carts.Mutate(ctx, cid, func(c *model.Cart) error {
		if len(c.Items) == 0 {
			return cerr.BadRequest(errors.New("cart is empty"))
		}
		h.Message = orders.BuildMessage(c.Clone(), name, notes)
		h.Link = orders.BuildLink(h.Message)
		c.Clear()
		return nil
	})
	if err != nil {
		h = Handoff{}
	}
	return
}
