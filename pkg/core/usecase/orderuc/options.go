// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package orderuc

import (
	"errors"
	"strings"
)

// Option is a functional option for the orders use case.
type Option func(uc *UseCase) error

// WithVenue option overrides the fixed closing location line of the
// order messages. This option may be passed to the New() function.
func WithVenue(venue string) Option {
	return func(uc *UseCase) error {
		venue = strings.TrimSpace(venue)
		if venue == "" {
			return errors.New("venue may not be blank")
		}
		if uc.venue != "" {
			return errors.New("venue is already configured")
		}
		uc.venue = venue
		return nil
	}
}
