// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package memcart realizes the session carts repository in process
// memory. Carts are transient by specification; this store keeps them
// in a mutex-guarded map keyed by random session ids and loses them on
// restart, which is the intended lifecycle. The store-level lock is
// held across each View or Mutate callback, so the per-cart mutation
// ordering stays as strict as in the single-threaded origin of the
// cart design.
package memcart

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/epiclounge/loungeweb/pkg/core/cerr"
	"github.com/epiclounge/loungeweb/pkg/core/model"
	"github.com/epiclounge/loungeweb/pkg/core/repo"
)

// ErrNoSession indicates that a given session id does not identify a
// known cart, either because it never existed or because it has been
// deleted after its checkout.
var ErrNoSession = errors.New("cart session not found")

// Store realizes the repo.Carts port in process memory.
type Store struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*model.Cart
}

var _ repo.Carts = (*Store)(nil)

// New instantiates an empty in-memory carts store.
func New() *Store {
	return &Store{carts: make(map[uuid.UUID]*model.Cart)}
}

// Create allocates a new empty cart and returns its session id.
func (s *Store) Create(_ context.Context) (uuid.UUID, error) {
	cid := uuid.New()
	s.mu.Lock()
	s.carts[cid] = &model.Cart{}
	s.mu.Unlock()
	return cid, nil
}

// View runs fn with the cid cart while holding the store read lock.
// The callback must not retain or mutate the cart; mutations belong
// to Mutate.
func (s *Store) View(
	_ context.Context, cid uuid.UUID, fn func(*model.Cart) error,
) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[cid]
	if !ok {
		return cerr.NotFound(ErrNoSession)
	}
	return fn(cart)
}

// Mutate runs fn with the cid cart while holding the store write
// lock. Changes are applied to a copy first and installed only when
// fn returns nil, so a failing callback leaves the cart untouched.
func (s *Store) Mutate(
	_ context.Context, cid uuid.UUID, fn func(*model.Cart) error,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[cid]
	if !ok {
		return cerr.NotFound(ErrNoSession)
	}
	scratch := cart.Clone()
	if err := fn(&scratch); err != nil {
		return err
	}
	*cart = scratch
	return nil
}

// Delete drops the cid cart session entirely; unknown ids are ignored.
func (s *Store) Delete(_ context.Context, cid uuid.UUID) error {
	s.mu.Lock()
	delete(s.carts, cid)
	s.mu.Unlock()
	return nil
}
