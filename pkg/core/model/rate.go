// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// ExchangeRate models the USD to LBP exchange rate as published by the
// upstream service. The LastUpdated field is an opaque timestamp
// string which is passed through to clients without interpretation.
type ExchangeRate struct {
	Rate        float64 `json:"rate"`
	LastUpdated string  `json:"lastUpdated"`
}
