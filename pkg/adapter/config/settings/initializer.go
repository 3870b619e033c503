// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

// OverwriteNil overwrites the (*dst) pointer, which should be nil,
// in order to point to a newly allocated T instance and initializes it
// with the (*src) value.
// If the (*dst) pointer was not nil or if the src was nil, this
// function will perform no action.
// It is used for filling settings which the user omitted from the
// configuration file with their default values.
func OverwriteNil[T any](dst **T, src *T) {
	if (*dst) != nil || src == nil {
		return
	}
	t := *src
	(*dst) = &t
}
