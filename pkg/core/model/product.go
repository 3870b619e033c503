// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by the upstream
// lounge API wire format) since adding more tags does not complicate
// definition of a struct, but can prevent unnecessary structs
// duplication.
package model

// Category models a product category as reported by the upstream
// catalog, carrying an opaque identifier and a human readable name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Pricing carries the dual-currency price of a product. The USD price
// is a decimal amount while the LBP price is always a whole number of
// pounds. Both values describe a single unit of the product.
type Pricing struct {
	USD float64 `json:"usd"`
	LBP int64   `json:"lbp"`
}

// Product models one sellable item of the lounge menu. Products are
// immutable in this system; they are fetched from the upstream catalog
// and never written back. The Description and Image fields are
// optional and may be empty.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	SKU         string   `json:"sku"`
	Category    Category `json:"category"`
	Pricing     Pricing  `json:"pricing"`
	Image       string   `json:"image,omitempty"`
}

// CategoryGroup collects the products which belong to one category.
// Groups preserve the order of first appearance of their category in
// the upstream catalog listing, so a menu rendered from them remains
// stable across refreshes as long as the upstream ordering is stable.
type CategoryGroup struct {
	Category Category  `json:"category"`
	Products []Product `json:"products"`
}

// GroupByCategory partitions the given products into category groups,
// keeping the first-seen order of categories and the relative order of
// products within each category.
func GroupByCategory(products []Product) []CategoryGroup {
	index := make(map[string]int, len(products))
	groups := make([]CategoryGroup, 0, len(products))
	for _, p := range products {
		i, ok := index[p.Category.ID]
		if !ok {
			i = len(groups)
			index[p.Category.ID] = i
			groups = append(groups, CategoryGroup{Category: p.Category})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}
