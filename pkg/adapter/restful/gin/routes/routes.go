// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/epiclounge/loungeweb/pkg/adapter/config"
	"github.com/epiclounge/loungeweb/pkg/adapter/restful/gin/cartrs"
	"github.com/epiclounge/loungeweb/pkg/adapter/restful/gin/menurs"
	"github.com/epiclounge/loungeweb/pkg/adapter/restful/gin/stationsrs"
	"github.com/epiclounge/loungeweb/pkg/core/repo"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/boarduc"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/menuuc"
)

// Upstream aggregates the three read ports of the external lounge API,
// so one client adapter instance can be passed around as a whole.
type Upstream interface {
	repo.Catalog
	repo.ExchangeRates
	repo.Stations
}

// Register instantiates relevant use cases based on the c
// configuration settings, using the up upstream ports and the carts
// session store, and registers a series of "resource" structs, from
// packages which are named like cartrs, as request handlers using the
// e gin-gonic engine instance. Each use case package is named like
// cartuc and each resource package adapts one of them.
// The station board use case is returned, so the caller may start its
// polling loop with a context whose cancellation bounds that loop.
// Possible errors will be returned after possible wrapping.
func Register(
	e *gin.Engine, up Upstream, carts repo.Carts, c *config.Config,
) (*boarduc.UseCase, error) {
	cartsUseCase, err := c.NewCartsUseCase(carts)
	if err != nil {
		return nil, fmt.Errorf("creating carts use case: %w", err)
	}
	ordersUseCase, err := c.NewOrdersUseCase(carts)
	if err != nil {
		return nil, fmt.Errorf("creating orders use case: %w", err)
	}
	boardUseCase, err := c.NewBoardUseCase(up)
	if err != nil {
		return nil, fmt.Errorf("creating board use case: %w", err)
	}
	gridUseCase, err := c.NewGridUseCase()
	if err != nil {
		return nil, fmt.Errorf("creating grid use case: %w", err)
	}
	menuUseCase := menuuc.New(up, up)

	r := e.Group("/api/loungeweb/v1")
	menurs.Register(r, menuUseCase)
	cartrs.Register(r, cartsUseCase, ordersUseCase)
	stationsrs.Register(r, boardUseCase, gridUseCase)
	return boardUseCase, nil
}
