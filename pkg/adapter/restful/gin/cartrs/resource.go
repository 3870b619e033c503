// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cartrs realizes the carts resource, allowing the session
// cart manipulation and checkout REST APIs to be accepted and
// delegated to the carts and orders use cases respectively.
package cartrs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epiclounge/loungeweb/pkg/adapter/restful/gin/serdser"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/cartuc"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/orderuc"
)

type resource struct {
	carts  *cartuc.UseCase
	orders *orderuc.UseCase
}

// Register instantiates a resource adapting the carts and orders use
// case instances with the relevant REST APIs including:
//  1. POST request to /api/loungeweb/v1/carts
//     in order to open a new cart session.
//  2. GET request to /api/loungeweb/v1/carts/:cid
//     in order to read a cart with its derived totals.
//  3. POST request to /api/loungeweb/v1/carts/:cid/items
//     in order to add a product to a cart.
//  4. PATCH request to /api/loungeweb/v1/carts/:cid/items/:pid
//     in order to set the quantity of a line item.
//  5. DELETE request to /api/loungeweb/v1/carts/:cid/items/:pid
//     in order to remove a line item.
//  6. DELETE request to /api/loungeweb/v1/carts/:cid
//     in order to clear a cart.
//  7. POST request to /api/loungeweb/v1/carts/:cid/checkout
//     in order to render the checkout payload and reset the cart.
func Register(
	r *gin.RouterGroup, carts *cartuc.UseCase, orders *orderuc.UseCase,
) {
	rs := &resource{carts: carts, orders: orders}
	r.POST("carts", rs.CreateCart)
	r.GET("carts/:cid", rs.GetCart)
	r.DELETE("carts/:cid", rs.ClearCart)
	r.POST("carts/:cid/items", rs.AddItem)
	r.PATCH("carts/:cid/items/:pid", rs.UpdateQuantity)
	r.DELETE("carts/:cid/items/:pid", rs.RemoveItem)
	r.POST("carts/:cid/checkout", rs.Checkout)
}

func (rs *resource) CreateCart(c *gin.Context) {
	cid, err := rs.carts.Create(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cid": cid.String()})
}

func (rs *resource) GetCart(c *gin.Context) {
	cid, ok := rs.DserCartID(c)
	if !ok {
		return
	}
	cart, err := rs.carts.Get(c, cid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCart(cart))
}

func (rs *resource) ClearCart(c *gin.Context) {
	cid, ok := rs.DserCartID(c)
	if !ok {
		return
	}
	if err := rs.carts.Clear(c, cid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCart(emptyCart))
}

func (rs *resource) AddItem(c *gin.Context) {
	req := rs.DserAddItemReq(c)
	if req == nil {
		return
	}
	cart, err := rs.carts.AddItem(c, req.CartID, req.Product)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCart(cart))
}

func (rs *resource) UpdateQuantity(c *gin.Context) {
	req := rs.DserQuantityReq(c)
	if req == nil {
		return
	}
	cart, err := rs.carts.UpdateQuantity(
		c, req.CartID, req.ProductID, req.Quantity,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCart(cart))
}

func (rs *resource) RemoveItem(c *gin.Context) {
	req := rs.DserItemID(c)
	if req == nil {
		return
	}
	cart, err := rs.carts.RemoveItem(c, req.CartID, req.ProductID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerCart(cart))
}

func (rs *resource) Checkout(c *gin.Context) {
	req := rs.DserCheckoutReq(c)
	if req == nil {
		return
	}
	h, err := rs.orders.Checkout(c, req.CartID, req.Name, req.Notes)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, h)
}
