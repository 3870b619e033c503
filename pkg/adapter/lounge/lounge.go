// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package lounge adapts the read-only HTTP API of the external lounge
// service to the repository ports of the core layer. Every successful
// response wraps its payload in a {"data": ...} envelope which this
// adapter unwraps; payloads are consumed as-is with no validation
// beyond optional-field handling. All requests share one fixed timeout
// and any transport error, timeout, or non-2xx status is reported as a
// cerr.Unavailable error, so callers uniformly degrade to their
// generic failed-to-load state without retrying.
package lounge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/epiclounge/loungeweb/pkg/core/cerr"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/repo"
)

// Upstream paths of the lounge API, relative to the configured base
// URL.
const (
	menuPath     = "/products/menu"
	ratePath     = "/exchange-rate/current"
	stationsPath = "/gaming/pcs/status"
)

// Client implements the Catalog, ExchangeRates, and Stations ports
// over one upstream lounge API endpoint.
type Client struct {
	base string
	hc   *http.Client
}

// Compile-time port conformance checks.
var (
	_ repo.Catalog       = (*Client)(nil)
	_ repo.ExchangeRates = (*Client)(nil)
	_ repo.Stations      = (*Client)(nil)
)

// New instantiates a lounge API client for the given base URL, such as
// http://localhost:3000/api/v1, enforcing the given timeout on every
// request. A non-positive timeout is rejected because a client without
// a request bound could block its caller indefinitely.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf(
			"base URL scheme (%q) is not http or https", u.Scheme,
		)
	}
	if timeout <= 0 {
		return nil, errors.New("timeout is not positive")
	}
	return &Client{
		base: strings.TrimRight(u.String(), "/"),
		hc:   &http.Client{Timeout: timeout},
	}, nil
}

// envelope is the common response wrapper of the upstream API.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// get issues one GET request against the given upstream path and
// decodes the enveloped payload into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.base+path, nil,
	)
	if err != nil {
		return fmt.Errorf("preparing GET %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return cerr.Unavailable(fmt.Errorf("GET %s: %w", path, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return cerr.Unavailable(fmt.Errorf(
			"GET %s: unexpected status %d", path, resp.StatusCode,
		))
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return cerr.Unavailable(fmt.Errorf(
			"GET %s: decoding response: %w", path, err,
		))
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return cerr.Unavailable(fmt.Errorf(
			"GET %s: decoding data: %w", path, err,
		))
	}
	return nil
}

// Menu fetches all menu products, realizing the repo.Catalog port.
func (c *Client) Menu(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.get(ctx, menuPath, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Current fetches the published exchange rate, realizing the
// repo.ExchangeRates port.
func (c *Client) Current(
	ctx context.Context,
) (model.ExchangeRate, error) {
	var rate model.ExchangeRate
	if err := c.get(ctx, ratePath, &rate); err != nil {
		return model.ExchangeRate{}, err
	}
	return rate, nil
}

// Status fetches one station board snapshot, realizing the
// repo.Stations port.
func (c *Client) Status(ctx context.Context) (model.Board, error) {
	var board model.Board
	if err := c.get(ctx, stationsPath, &board); err != nil {
		return model.Board{}, err
	}
	return board, nil
}
