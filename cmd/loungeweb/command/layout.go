// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epiclounge/loungeweb/pkg/adapter/config"
	"github.com/epiclounge/loungeweb/pkg/core/model"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Station grid floor plan actions",
	Long: `Station grid floor plan actions can be chosen by
sub-commands. The check action validates the effective layout, either
the built-in floor plan or the one overriding it in the configuration
file, and prints its slots, so a misplaced or duplicated slot can be
caught before it silently drops a station from the rendered grid.`,
}

var layoutCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate and print the effective station layout",
	RunE:  checkLayout,
}

func checkLayout(_ *cobra.Command, _ []string) error {
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	layout := c.Grid.Layout
	source := "configuration file"
	if len(layout) == 0 {
		layout = model.DefaultLayout()
		source = "built-in floor plan"
	}
	if err := model.ValidateLayout(layout); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	fmt.Printf("layout source: %s (%d slots)\n", source, len(layout))
	for _, s := range layout {
		fmt.Printf(
			"  %-8s x=%5.1f%% y=%5.1f%% rotation=%5.1f°\n",
			s.Station, s.X, s.Y, s.Rotation,
		)
	}
	return nil
}

func init() {
	layoutCmd.AddCommand(layoutCheckCmd)
	rootCmd.AddCommand(layoutCmd)
}
