// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cartuc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the carts use case.
type Option func(uc *UseCase) error

// WithMaxQuantity option configures a carts UseCase instance in order
// to reject additions and quantity updates which would push a single
// line item beyond the given bound. Without this option, quantities
// stay unbounded. This option may be passed to the New() function.
func WithMaxQuantity(max int) Option {
	return func(uc *UseCase) error {
		if max <= 0 {
			return fmt.Errorf("max quantity (%d) is not positive", max)
		}
		if uc.maxQuantity != 0 {
			return errors.New("max quantity is already configured")
		}
		uc.maxQuantity = max
		return nil
	}
}
