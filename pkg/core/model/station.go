// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"strings"
)

// StationStatus specifies the occupancy status enum of one gaming
// station. Although this enum is numeric, it is (de)serialized as a
// string for readability in the adapter layer.
type StationStatus int

// Valid values for the StationStatus enum.
const (
	StationStatusInvalid StationStatus = iota // zero value is invalid

	StationStatusAvailable   // station is free and may be taken
	StationStatusOccupied    // station is currently in use
	StationStatusMaintenance // station is down for maintenance
)

// ErrUnknownStationStatus indicates that a given string may not be
// parsed as a valid/known station status. This error encodes a
// description err string and does not communicate the invalid status
// string itself because the caller of Parse already knows about the
// invalid status string.
var ErrUnknownStationStatus = errors.New("unknown station status")

// StationStatusError indicates an invalid station status. This error
// contains the invalid status as an integer, so functions which find
// out about the invalid value during their execution (and not by their
// arguments) can report it completely.
type StationStatusError int

// Error implements the error interface, returning a string
// representation of the StationStatusError.
func (e StationStatusError) Error() string {
	return fmt.Sprintf("invalid station status: %d", e)
}

// Validate returns nil if StationStatus value is valid. For invalid
// values, an instance of the StationStatusError will be returned.
func (s StationStatus) Validate() error {
	switch s {
	case StationStatusAvailable,
		StationStatusOccupied,
		StationStatusMaintenance:
		return nil
	default:
		return StationStatusError(s)
	}
}

// String converts the StationStatus enum to a string, helping to
// serialize it for transmission to web clients (for improved
// readability). Invalid station status causes a panic.
func (s StationStatus) String() string {
	switch s {
	case StationStatusAvailable:
		return "available"
	case StationStatusOccupied:
		return "occupied"
	case StationStatusMaintenance:
		return "maintenance"
	default:
		panic(StationStatusError(s))
	}
}

// ParseStationStatus parses the given string and returns a
// StationStatus, helping to deserialize it when reading an upstream
// status feed or a REST API request. For invalid strings,
// StationStatusInvalid and ErrUnknownStationStatus will be returned.
func ParseStationStatus(s string) (StationStatus, error) {
	switch s {
	case "available":
		return StationStatusAvailable, nil
	case "occupied":
		return StationStatusOccupied, nil
	case "maintenance":
		return StationStatusMaintenance, nil
	default:
		return StationStatusInvalid, ErrUnknownStationStatus
	}
}

// UnmarshalText reifies the encoding.TextUnmarshaler interface, so a
// status string read from an upstream JSON payload can be decoded.
// Upstream payloads are consumed as-is without schema validation, so
// an unrecognized status degrades to StationStatusInvalid instead of
// failing the surrounding decode operation. Such stations are still
// listed; they simply take the default visual encoding.
func (s *StationStatus) UnmarshalText(data []byte) error {
	v, err := ParseStationStatus(string(data))
	if err != nil {
		v = StationStatusInvalid
	}
	*s = v
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface. The
// invalid status is serialized as an empty string, mirroring how it
// was received.
func (s StationStatus) MarshalText() ([]byte, error) {
	if s == StationStatusInvalid {
		return []byte(""), nil
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// Station models one physical, individually trackable gaming seat as
// reported by the upstream status feed. The status is authoritative
// from that feed and read-only in this system; nothing here ever
// mutates a station, only reflects it. The Location field is optional
// free text.
type Station struct {
	Number   string        `json:"pcNumber"`
	Name     string        `json:"name"`
	Status   StationStatus `json:"status"`
	Location string        `json:"location,omitempty"`
}

// BoardStats carries the aggregate station counters as computed by the
// upstream service. They are passed through without recomputation.
type BoardStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}

// Board models one complete snapshot of the live station status feed.
type Board struct {
	Stations []Station  `json:"pcs"`
	Stats    BoardStats `json:"stats"`
}

// stationPrefix is the station number prefix which the normalization
// rules treat as optional, compared case-insensitively.
const stationPrefix = "PC"

// hasStationPrefix reports whether the number starts with the optional
// station prefix, ignoring the case of the prefix characters.
func hasStationPrefix(number string) bool {
	return len(number) >= len(stationPrefix) &&
		strings.EqualFold(number[:len(stationPrefix)], stationPrefix)
}

// StationIndex supports looking stations up by their logical number
// under the prefix normalization rules: a bare numeric form and a
// prefixed form, such as "7" and "PC7", resolve to the same station.
type StationIndex map[string]Station

// NewStationIndex builds an index over the given feed snapshot. Each
// station is indexed under its exact number and, additionally, under
// its prefixed form (when the feed number is bare) or its stripped
// form (when the feed number carries the prefix), so lookups
// round-trip in both directions.
func NewStationIndex(stations []Station) StationIndex {
	ix := make(StationIndex, 2*len(stations))
	for _, s := range stations {
		ix[s.Number] = s
		if !hasStationPrefix(s.Number) {
			ix[stationPrefix+s.Number] = s
		} else {
			ix[s.Number[len(stationPrefix):]] = s
		}
	}
	return ix
}

// Resolve applies the three-step identifier matching rule to find the
// status record for the given station number: an exact match is tried
// first, then the prefixed form, then the stripped-prefix form. When
// no match is found after all three attempts, the second result is
// false; an unresolved number is never an error, the caller simply
// skips the station.
func (ix StationIndex) Resolve(number string) (Station, bool) {
	if s, ok := ix[number]; ok {
		return s, true
	}
	if s, ok := ix[stationPrefix+number]; ok {
		return s, true
	}
	if hasStationPrefix(number) {
		if s, ok := ix[number[len(stationPrefix):]]; ok {
			return s, true
		}
	}
	return Station{}, false
}
