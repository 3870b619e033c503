// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package menurs realizes the menu resource, allowing the digital menu
// and exchange rate REST APIs to be accepted and delegated to the menu
// use cases respectively.
package menurs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epiclounge/loungeweb/pkg/adapter/restful/gin/serdser"
	"github.com/epiclounge/loungeweb/pkg/core/log"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/menuuc"
)

type resource struct {
	menu *menuuc.UseCase
}

// Register instantiates a resource adapting the menu use case instance
// with the relevant REST APIs including:
//  1. GET request to /api/loungeweb/v1/menu
//     in order to fetch the grouped digital menu.
//  2. GET request to /api/loungeweb/v1/exchange-rate
//     in order to fetch the published USD/LBP exchange rate.
func Register(r *gin.RouterGroup, menu *menuuc.UseCase) {
	rs := &resource{menu: menu}
	r.GET("menu", rs.GetMenu)
	r.GET("exchange-rate", rs.GetExchangeRate)
}

// menuResp carries one menu fetch result. The exchange rate is
// best-effort; when its fetch fails, the menu is still served and the
// rate is left null, matching the storefront behavior of falling back
// silently for the rate while failing loudly for the menu itself.
type menuResp struct {
	menuuc.Menu
	ExchangeRate *model.ExchangeRate `json:"exchangeRate"`
}

func (rs *resource) GetMenu(c *gin.Context) {
	m, err := rs.menu.Menu(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	resp := menuResp{Menu: m}
	if rate, err := rs.menu.ExchangeRate(c); err != nil {
		log.Warn(c, "exchange rate fetch failed", log.Err("err", err))
	} else {
		resp.ExchangeRate = &rate
	}
	c.JSON(http.StatusOK, resp)
}

func (rs *resource) GetExchangeRate(c *gin.Context) {
	rate, err := rs.menu.ExchangeRate(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}
