// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2024 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

/*
Package fwdrift collects cryptographic measurements of security relevant
firmware state and detects drift against a previously recorded baseline.

Measurements are identified by namespaced strings such as "UEFI:BootOrder"
or "ACPI:SLIC". A [MeasurementSet] holding the current platform state can
be serialized to a line oriented text form for persistence, and a freshly
collected set can later be compared against the persisted baseline to
detect additions, removals and modifications.
*/
package fwdrift

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// MeasurementSet maps measurement identifiers to hex encoded digests of the
// corresponding piece of platform state. Identifiers and digests must not
// contain newlines, and digests must not contain '=' - these characters
// delimit the serialized form.
//
// A MeasurementSet is not safe for concurrent mutation. The intended usage
// is build-then-read-only: each set is populated by a single owning context
// ([MeasurementSet.Measure] or [LoadBaseline]) before being handed to
// [MeasurementSet.Compare] or serialized.
type MeasurementSet map[string]string

// NewMeasurementSet returns an empty MeasurementSet.
func NewMeasurementSet() MeasurementSet {
	return make(MeasurementSet)
}

// AddChecksum records the supplied digest under the supplied identifier,
// replacing any digest already recorded for it. Entries are independent
// owned strings with no aliasing of caller buffers.
func (s MeasurementSet) AddChecksum(id, csum string) {
	s[id] = csum
}

// AddMeasurement records the SHA-256 digest of the supplied blob under the
// supplied identifier.
func (s MeasurementSet) AddMeasurement(id string, blob []byte) {
	csum := sha256.Sum256(blob)
	s.AddChecksum(id, hex.EncodeToString(csum[:]))
}

// Len returns the number of measurements in this set.
func (s MeasurementSet) Len() int {
	return len(s)
}

func (s MeasurementSet) sortedIDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
