// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package menuuc contains the menu UseCase which fetches the product
// catalog from the external lounge API and groups it by category for
// presentation, and which reports the currently published USD/LBP
// exchange rate. All reads are fetch-on-demand; no catalog data is
// kept between calls.
package menuuc

import (
	"context"
	"fmt"

	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/repo"
)

// Menu carries one fetched rendition of the digital menu: the flat
// product listing together with its category grouping. The grouping
// is always derived from the listing at fetch time, never stored.
type Menu struct {
	Products []model.Product       `json:"products"`
	Groups   []model.CategoryGroup `json:"groups"`
}

// UseCase represents a menu use case. It holds the catalog and
// exchange rates read ports of the external lounge API.
type UseCase struct {
	catalog repo.Catalog
	rates   repo.ExchangeRates
}

// New instantiates a menu use case with the given read ports.
func New(catalog repo.Catalog, rates repo.ExchangeRates) *UseCase {
	return &UseCase{catalog: catalog, rates: rates}
}

// Menu use case fetches all menu products and partitions them into
// category groups, preserving the upstream listing order. A fetch
// failure is returned as-is (wrapped), leaving the caller to surface
// its generic failed-to-load state; no partial menu is ever returned.
func (menu *UseCase) Menu(ctx context.Context) (Menu, error) {
	products, err := menu.catalog.Menu(ctx)
	if err != nil {
		return Menu{}, fmt.Errorf("fetching menu products: %w", err)
	}
	return Menu{
		Products: products,
		Groups:   model.GroupByCategory(products),
	}, nil
}

// ExchangeRate use case fetches the currently published exchange rate.
func (menu *UseCase) ExchangeRate(
	ctx context.Context,
) (model.ExchangeRate, error) {
	rate, err := menu.rates.Current(ctx)
	if err != nil {
		return model.ExchangeRate{}, fmt.Errorf(
			"fetching exchange rate: %w", err,
		)
	}
	return rate, nil
}
