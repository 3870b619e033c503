// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package lounge_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiclounge/loungeweb/internal/test/upstream"
	"github.com/epiclounge/loungeweb/pkg/adapter/lounge"
	"github.com/epiclounge/loungeweb/pkg/core/cerr"
	"github.com/epiclounge/loungeweb/pkg/core/model"
)

func TestNewValidatesItsArguments(t *testing.T) {
	_, err := lounge.New("localhost:3000", time.Second)
	assert.Error(t, err, "a base URL needs an http or https scheme")
	_, err = lounge.New("ftp://example.com", time.Second)
	assert.Error(t, err)
	_, err = lounge.New("http://example.com", 0)
	assert.Error(t, err, "a client without a timeout is rejected")
	_, err = lounge.New("http://example.com/api/v1/", time.Second)
	assert.NoError(t, err, "a trailing slash is acceptable")
}

func TestMenu(t *testing.T) {
	ctx := context.Background()
	srv := upstream.New(
		upstream.SampleProducts(),
		model.ExchangeRate{Rate: 89500},
		upstream.SampleBoard(),
	)
	defer srv.Close()
	c, err := lounge.New(srv.URL(), time.Second)
	require.NoError(t, err)

	products, err := c.Menu(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Espresso", products[0].Name)
	assert.Equal(t, int64(179000), products[0].Pricing.LBP)
	assert.Equal(t, 1, srv.HitCount("/products/menu"))
}

func TestCurrent(t *testing.T) {
	ctx := context.Background()
	srv := upstream.New(
		nil,
		model.ExchangeRate{Rate: 89500, LastUpdated: "2025-08-01"},
		model.Board{},
	)
	defer srv.Close()
	c, err := lounge.New(srv.URL(), time.Second)
	require.NoError(t, err)

	rate, err := c.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 89500.0, rate.Rate)
	assert.Equal(t, "2025-08-01", rate.LastUpdated)
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	srv := upstream.New(nil, model.ExchangeRate{}, upstream.SampleBoard())
	defer srv.Close()
	c, err := lounge.New(srv.URL(), time.Second)
	require.NoError(t, err)

	board, err := c.Status(ctx)
	require.NoError(t, err)
	require.Len(t, board.Stations, 3)
	assert.Equal(
		t, model.StationStatusOccupied, board.Stations[1].Status,
	)
	assert.Equal(t, 3, board.Stats.Total)
}

func TestUpstreamFailuresAreUnavailable(t *testing.T) {
	ctx := context.Background()
	srv := upstream.New(
		upstream.SampleProducts(), model.ExchangeRate{}, model.Board{},
	)
	defer srv.Close()
	c, err := lounge.New(srv.URL(), time.Second)
	require.NoError(t, err)

	srv.SetFail("/products/menu", true)
	_, err = c.Menu(ctx)
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, http.StatusServiceUnavailable, cErr.HTTPStatusCode)

	srv.SetFail("/products/menu", false)
	_, err = c.Menu(ctx)
	assert.NoError(t, err, "no state is kept across failures")
}

func TestMalformedPayloadIsUnavailable(t *testing.T) {
	ctx := context.Background()
	ts := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"data": "not a product list"}`))
		},
	))
	defer ts.Close()
	c, err := lounge.New(ts.URL, time.Second)
	require.NoError(t, err)

	_, err = c.Menu(ctx)
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, http.StatusServiceUnavailable, cErr.HTTPStatusCode)
}

func TestTimeoutIsUnavailable(t *testing.T) {
	ctx := context.Background()
	blocked := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(
		func(http.ResponseWriter, *http.Request) {
			<-blocked
		},
	))
	defer ts.Close()
	defer close(blocked)
	c, err := lounge.New(ts.URL, 50*time.Millisecond)
	require.NoError(t, err)

	_, err = c.Status(ctx)
	var cErr *cerr.Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, http.StatusServiceUnavailable, cErr.HTTPStatusCode)
}
