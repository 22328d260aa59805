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

package fwdrift

import (
	"strings"
)

// MarshalText implements [encoding.TextMarshaler].
//
// Each entry is rendered as one "identifier=digest" line. Entries are
// sorted by identifier so that the output is byte stable across runs,
// which keeps persisted baselines reproducible. An empty set marshals to
// nil - there is no valid text form for it.
func (s MeasurementSet) MarshalText() ([]byte, error) {
	if len(s) == 0 {
		return nil, nil
	}

	lines := make([]string, 0, len(s))
	for _, id := range s.sortedIDs() {
		lines = append(lines, id+"="+s[id])
	}
	return []byte(strings.Join(lines, "\n")), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
//
// Blank lines and lines beginning with '#' are ignored so that baseline
// files can be annotated by hand. Every other line must contain a '='
// separating the identifier from its digest, and is added to the set with
// insert-or-replace semantics.
//
// Parsing is atomic - if any line is malformed, a *[ParseError] carrying
// the original input is returned and the receiver is left unmodified.
func (s *MeasurementSet) UnmarshalText(data []byte) error {
	parsed := NewMeasurementSet()
	for _, line := range strings.Split(string(data), "\n") {
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		id, csum, ok := strings.Cut(line, "=")
		if !ok {
			return &ParseError{Input: string(data)}
		}
		parsed.AddChecksum(id, csum)
	}

	if *s == nil {
		*s = parsed
		return nil
	}
	for id, csum := range parsed {
		s.AddChecksum(id, csum)
	}
	return nil
}
