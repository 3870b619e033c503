// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// The loungeweb program serves the front-of-house REST APIs of the
// lounge: the digital menu, the session carts with their messaging
// checkout handoff, and the live station board. See the command
// package for the supported commands and flags.
package main

import "github.com/epiclounge/loungeweb/cmd/loungeweb/command"

func main() {
	command.Execute()
}
