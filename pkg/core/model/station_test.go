// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiclounge/loungeweb/pkg/core/model"
)

func TestStationStatusValidate(t *testing.T) {
	for _, s := range []model.StationStatus{
		model.StationStatusAvailable,
		model.StationStatusOccupied,
		model.StationStatusMaintenance,
	} {
		assert.NoError(t, s.Validate())
	}
	err := model.StationStatusInvalid.Validate()
	var sErr model.StationStatusError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, model.StationStatusError(0), sErr)
	assert.ErrorContains(t, err, "invalid station status: 0")
}

func TestStationStatusStringPanicsOnInvalid(t *testing.T) {
	assert.Equal(t, "available", model.StationStatusAvailable.String())
	assert.Equal(t, "occupied", model.StationStatusOccupied.String())
	assert.Equal(
		t, "maintenance", model.StationStatusMaintenance.String(),
	)
	assert.Panics(t, func() {
		_ = model.StationStatusInvalid.String()
	})
}

func TestParseStationStatus(t *testing.T) {
	s, err := model.ParseStationStatus("occupied")
	require.NoError(t, err)
	assert.Equal(t, model.StationStatusOccupied, s)

	s, err = model.ParseStationStatus("OCCUPIED")
	assert.ErrorIs(t, err, model.ErrUnknownStationStatus)
	assert.Equal(t, model.StationStatusInvalid, s)
}

func TestStationStatusDecodingIsTotal(t *testing.T) {
	// an unrecognized status must not fail the surrounding decode
	var s model.Station
	err := json.Unmarshal([]byte(
		`{"pcNumber":"PC-007","name":"PC 7","status":"rebooting"}`,
	), &s)
	require.NoError(t, err)
	assert.Equal(t, "PC-007", s.Number)
	assert.Equal(t, model.StationStatusInvalid, s.Status)

	err = json.Unmarshal([]byte(
		`{"pcNumber":"PC-001","name":"PC 1","status":"available"}`,
	), &s)
	require.NoError(t, err)
	assert.Equal(t, model.StationStatusAvailable, s.Status)
}

func TestStationStatusEncoding(t *testing.T) {
	b, err := json.Marshal(model.StationStatusMaintenance)
	require.NoError(t, err)
	assert.Equal(t, `"maintenance"`, string(b))

	b, err = json.Marshal(model.StationStatusInvalid)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(b))

	_, err = json.Marshal(model.StationStatus(42))
	assert.Error(t, err)
}

func TestStationIndexResolve(t *testing.T) {
	ix := model.NewStationIndex([]model.Station{
		{Number: "PC7", Status: model.StationStatusAvailable},
		{Number: "12", Status: model.StationStatusOccupied},
		{Number: "pc-003", Status: model.StationStatusMaintenance},
	})
	for _, tc := range []struct {
		name   string
		number string
		want   string
		found  bool
	}{
		{"exact", "PC7", "PC7", true},
		{"stripped of prefix", "7", "PC7", true},
		{"exact bare", "12", "12", true},
		{"prefixed bare", "PC12", "12", true},
		{"exact lower prefix", "pc-003", "pc-003", true},
		{"stripped lower prefix", "-003", "pc-003", true},
		{"unknown", "PC99", "", false},
		{"empty", "", "", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, ok := ix.Resolve(tc.number)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, s.Number)
		})
	}
}
