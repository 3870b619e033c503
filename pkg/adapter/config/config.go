// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the loungeweb to instantiate
// different components, from the adapter or use cases layers, using
// those loaded configuration settings.
// The parsed and validated configurations are passed to their ultimate
// components as a series of individual params (for the mandatory
// items) and a series of functional options (for the optional items),
// so they may be accumulated and validated again in the relevant
// end-component such as a UseCase instance. This design decision
// causes a bit of redundancy in favor of a defensive solution.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/epiclounge/loungeweb/pkg/adapter/config/settings"
	"github.com/epiclounge/loungeweb/pkg/adapter/lounge"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/repo"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/boarduc"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/cartuc"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/griduc"
	"github.com/epiclounge/loungeweb/pkg/core/usecase/orderuc"
)

// Config contains all settings of the loungeweb program.
type Config struct {
	Lounge   Lounge   `yaml:"lounge"`
	Gin      Gin      `yaml:"gin"`
	Board    Board    `yaml:"board"`
	Checkout Checkout `yaml:"checkout"`
	Grid     Grid     `yaml:"grid"`
}

// Lounge contains the connection settings of the external lounge API
// which owns the product catalog, the exchange rate, and the station
// status feed. The base URL is the only setting which differs between
// a local and a deployed installation.
type Lounge struct {
	// BaseURL locates the upstream API, e.g.
	// http://localhost:3000/api/v1 for a local installation.
	BaseURL string `yaml:"base_url" validate:"required,http_url"`

	// Timeout bounds every upstream request. Defaults to 10s.
	Timeout *settings.Duration `yaml:"timeout"`
}

// Gin contains the Gin-Gonic instantiation settings.
type Gin struct {
	Logger   *bool `yaml:"logger"`   // register gin.Logger() middleware
	Recovery *bool `yaml:"recovery"` // register gin.Recovery()
}

// Board contains the station board polling settings.
type Board struct {
	// PollInterval decides how often the station status feed is
	// re-fetched while the server runs. Defaults to 30s.
	PollInterval *settings.Duration `yaml:"poll_interval"`
}

// Checkout contains the settings of the order handoff deep link.
type Checkout struct {
	// Destination is the fixed identifier of the messaging account
	// which receives order messages, in international phone number
	// digits form without a leading plus sign.
	Destination string `yaml:"destination" validate:"required,numeric"`

	// Venue optionally overrides the closing location line of the
	// order messages.
	Venue string `yaml:"venue"`

	// MaxQuantity optionally bounds the quantity of a single cart
	// line item. Zero keeps quantities unbounded.
	MaxQuantity int `yaml:"max_quantity" validate:"gte=0"`
}

// Grid contains the station grid rendering settings.
type Grid struct {
	// GlyphSize optionally overrides the base pixel size of station
	// glyphs (which is also the hit-test radius).
	GlyphSize float64 `yaml:"glyph_size" validate:"gte=0"`

	// Layout optionally replaces the built-in floor plan; every slot
	// places one station number at percentage coordinates with a
	// rotation in degrees.
	Layout []model.Slot `yaml:"layout"`
}

// Default values for the optional settings.
var (
	defaultTimeout      = settings.Duration(10 * time.Second)
	defaultPollInterval = settings.Duration(30 * time.Second)
	defaultGinToggle    = true
)

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// replaces the missing optional items with their default values, so
// the settings may be passed to the component constructors afterwards.
func (c *Config) ValidateAndNormalize() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("struct validation: %w", err)
	}
	if err := model.ValidateLayout(c.Grid.Layout); err != nil {
		return fmt.Errorf("grid layout: %w", err)
	}
	settings.OverwriteNil(&c.Lounge.Timeout, &defaultTimeout)
	settings.OverwriteNil(&c.Board.PollInterval, &defaultPollInterval)
	settings.OverwriteNil(&c.Gin.Logger, &defaultGinToggle)
	settings.OverwriteNil(&c.Gin.Recovery, &defaultGinToggle)
	if td := time.Duration(*c.Lounge.Timeout); td <= 0 {
		return fmt.Errorf("lounge timeout (%d) is not positive", td)
	}
	if pd := time.Duration(*c.Board.PollInterval); pd <= 0 {
		return fmt.Errorf("poll interval (%d) is not positive", pd)
	}
	return nil
}

// NewEngine instantiates a gin engine with the configured middlewares.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// NewLoungeClient instantiates the upstream lounge API client adapter
// based on the lounge connection settings.
func (c *Config) NewLoungeClient() (*lounge.Client, error) {
	return lounge.New(
		c.Lounge.BaseURL, time.Duration(*c.Lounge.Timeout),
	)
}

// NewCartsUseCase instantiates the carts use case over the given
// session carts repository.
func (c *Config) NewCartsUseCase(
	carts repo.Carts,
) (*cartuc.UseCase, error) {
	var opts []cartuc.Option
	if m := c.Checkout.MaxQuantity; m > 0 {
		opts = append(opts, cartuc.WithMaxQuantity(m))
	}
	return cartuc.New(carts, opts...)
}

// NewOrdersUseCase instantiates the orders use case over the given
// session carts repository, addressing checkout links to the
// configured messaging destination.
func (c *Config) NewOrdersUseCase(
	carts repo.Carts,
) (*orderuc.UseCase, error) {
	var opts []orderuc.Option
	if c.Checkout.Venue != "" {
		opts = append(opts, orderuc.WithVenue(c.Checkout.Venue))
	}
	return orderuc.New(carts, c.Checkout.Destination, opts...)
}

// NewBoardUseCase instantiates the station board use case over the
// given stations read port.
func (c *Config) NewBoardUseCase(
	s repo.Stations,
) (*boarduc.UseCase, error) {
	return boarduc.New(s, boarduc.WithPollInterval(
		time.Duration(*c.Board.PollInterval),
	))
}

// NewGridUseCase instantiates the station grid use case over the
// configured layout, falling back to the built-in floor plan when the
// configuration file does not override it.
func (c *Config) NewGridUseCase() (*griduc.UseCase, error) {
	layout := c.Grid.Layout
	if len(layout) == 0 {
		layout = model.DefaultLayout()
	}
	var opts []griduc.Option
	if c.Grid.GlyphSize > 0 {
		opts = append(opts, griduc.WithGlyphSize(c.Grid.GlyphSize))
	}
	return griduc.New(layout, opts...)
}
