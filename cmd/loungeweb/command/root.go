// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the
// loungeweb project. Commands are organized using the cobra library.
// The root command starts the web server itself while the "layout"
// sub-command can be used for offline inspection of the station grid
// floor plan.
//
//	./loungeweb [-c /path/of/main/config.yaml]       # start web server
//	./loungeweb layout check [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/epiclounge/loungeweb/pkg/adapter/config"
	"github.com/epiclounge/loungeweb/pkg/adapter/memcart"
	"github.com/epiclounge/loungeweb/pkg/adapter/restful/gin/routes"
	"github.com/epiclounge/loungeweb/pkg/core/log"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "loungeweb",
	Short: "The front-of-house web service of the gaming lounge",
	Long: `The front-of-house web service of the gaming lounge.
It serves the digital menu with its category grouping and published
USD/LBP exchange rate, maintains the transient session carts which are
checked out through a pre-filled messaging deep link, and mirrors the
live station status board of the lounge including its canvas grid
scene computation and pointer hit-testing.
All lounge data is owned by an external read-only API; this service
keeps no persistent state of its own. The station status feed is
polled on a fixed interval for as long as the server runs and may be
re-fetched manually through the refresh API.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	log.Setup(slog.LevelInfo)
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	log.Info(ctx, "starting the loungeweb server",
		log.Valuer("lounge-timeout", c.Lounge.Timeout),
		log.Valuer("poll-interval", c.Board.PollInterval))
	up, err := c.NewLoungeClient()
	if err != nil {
		return fmt.Errorf("creating lounge API client: %w", err)
	}
	carts := memcart.New()
	e := c.Gin.NewEngine()
	board, err := routes.Register(e, up, carts, c)
	if err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	go func() {
		if err := board.Poll(ctx); err != nil {
			log.Error(ctx, "station board polling stopped",
				log.Err("err", err))
		}
	}()
	if err = e.Run(); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
// By the way, default value is not necessarily a single path and may
// check several paths sequentially and take the highest priority one
// among the existing paths. For example, a user-specific path may take
// precedence over a file in /etc which is selected over a file in /usr.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		// the default path should usually be in the /etc directory
		cfgPath = "configs/sample-config.yaml"
	}
}
