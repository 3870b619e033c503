// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package upstream is an internal helper for the test packages.
// It runs a fake lounge management API over an httptest server,
// serving the three read-only endpoints which this project consumes,
// namely the products menu, the current exchange rate, and the gaming
// stations status board. Response payloads are configurable and each
// endpoint can be forced to fail in order to examine the error paths
// of the consuming adapters and use cases.
package upstream

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/goccy/go-json"

	"github.com/epiclounge/loungeweb/pkg/core/model"
)

// Server wraps an httptest.Server which mimics the lounge management
// API. Use the exported fields to adjust the served payloads and the
// Fail set to force individual endpoints to respond with an internal
// server error status code. All fields are guarded by an internal
// mutex, hence, may be updated from the test goroutine while the
// server is serving requests concurrently.
type Server struct {
	mutex sync.Mutex

	// Products is returned by the menu endpoint.
	Products []model.Product
	// Rate is returned by the exchange rate endpoint.
	Rate model.ExchangeRate
	// Board is returned by the stations status endpoint.
	Board model.Board
	// Fail contains the request paths which must respond with an
	// HTTP 500 status code instead of their normal payloads.
	Fail map[string]bool
	// Hits counts the requests which were observed per path.
	Hits map[string]int

	ts *httptest.Server
}

// New creates a fake lounge management API server, filled with the
// given products, rate, and board payloads. The returned server must
// be released by a (deferred) call to the Close method.
func New(
	products []model.Product, rate model.ExchangeRate, board model.Board,
) *Server {
	s := &Server{
		Products: products,
		Rate:     rate,
		Board:    board,
		Fail:     make(map[string]bool),
		Hits:     make(map[string]int),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/products/menu", func(
		w http.ResponseWriter, r *http.Request,
	) {
		s.reply(w, r, func() any { return s.Products })
	})
	mux.HandleFunc("/exchange-rate/current", func(
		w http.ResponseWriter, r *http.Request,
	) {
		s.reply(w, r, func() any { return s.Rate })
	})
	mux.HandleFunc("/gaming/pcs/status", func(
		w http.ResponseWriter, r *http.Request,
	) {
		s.reply(w, r, func() any { return s.Board })
	})
	s.ts = httptest.NewServer(mux)
	return s
}

// URL returns the base URL of the fake server, suitable for passing
// to the lounge adapter constructor.
func (s *Server) URL() string {
	return s.ts.URL
}

// Close shuts the underlying httptest server down.
func (s *Server) Close() {
	s.ts.Close()
}

// SetFail marks or unmarks the given request path to respond with an
// HTTP 500 status code.
func (s *Server) SetFail(path string, fail bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Fail[path] = fail
}

// HitCount returns the number of requests which were observed for the
// given request path so far.
func (s *Server) HitCount(path string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.Hits[path]
}

type envelope struct {
	Data any `json:"data"`
}

func (s *Server) reply(
	w http.ResponseWriter, r *http.Request, payload func() any,
) {
	s.mutex.Lock()
	s.Hits[r.URL.Path]++
	fail := s.Fail[r.URL.Path]
	data := payload()
	s.mutex.Unlock()
	if fail {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	b, err := json.Marshal(envelope{Data: data})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(b)
}

// SampleProducts returns a small fixed menu which is useful for tests
// requiring some products without caring about their exact values.
func SampleProducts() []model.Product {
	hot := model.Category{ID: "c-hot", Name: "Hot Drinks"}
	snacks := model.Category{ID: "c-snacks", Name: "Snacks"}
	return []model.Product{
		{
			ID:       "p-espresso",
			Name:     "Espresso",
			SKU:      "HOT-001",
			Category: hot,
			Pricing:  model.Pricing{USD: 2, LBP: 179000},
		},
		{
			ID:       "p-chips",
			Name:     "Chips",
			SKU:      "SNK-001",
			Category: snacks,
			Pricing:  model.Pricing{USD: 1.5, LBP: 134250},
		},
		{
			ID:       "p-latte",
			Name:     "Latte",
			SKU:      "HOT-002",
			Category: hot,
			Pricing:  model.Pricing{USD: 3.5, LBP: 313250},
		},
	}
}

// SampleBoard returns a fixed stations board with one station in each
// of the known statuses.
func SampleBoard() model.Board {
	return model.Board{
		Stations: []model.Station{
			{
				Number: "PC-001",
				Name:   "PC-001",
				Status: model.StationStatusAvailable,
			},
			{
				Number: "PC-002",
				Name:   "PC-002",
				Status: model.StationStatusOccupied,
			},
			{
				Number: "PC-003",
				Name:   "PC-003",
				Status: model.StationStatusMaintenance,
			},
		},
		Stats: model.BoardStats{Total: 3, Available: 1, Occupied: 1},
	}
}
