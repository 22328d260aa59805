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

// ChangeKind classifies a single difference between a current measurement
// set and a baseline.
type ChangeKind int

const (
	// ChangeAdded indicates an identifier measured now but absent from
	// the baseline.
	ChangeAdded ChangeKind = iota

	// ChangeRemoved indicates an identifier recorded in the baseline but
	// no longer measured.
	ChangeRemoved

	// ChangeChanged indicates an identifier present in both sets with
	// different digests.
	ChangeChanged
)

// Change describes one difference between a current measurement set and a
// baseline.
type Change struct {
	ID   string
	Kind ChangeKind
	Old  string // the digest recorded in the baseline, empty for ChangeAdded
	New  string // the digest measured now, empty for ChangeRemoved
}

// String renders this change in the old->new direction, with "MISSING"
// standing in for the side on which the identifier is absent.
func (c *Change) String() string {
	switch c.Kind {
	case ChangeAdded:
		return c.ID + "=MISSING->" + c.New
	case ChangeRemoved:
		return c.ID + "=" + c.Old + "->MISSING"
	default:
		return c.ID + "=" + c.Old + "->" + c.New
	}
}

// MismatchError is returned from [MeasurementSet.Compare] when the two
// sets differ. The rendered message is the complete diff - it is the
// diagnostic, not a summary of one.
type MismatchError struct {
	Changes []Change
}

func (e *MismatchError) Error() string {
	rendered := make([]string, 0, len(e.Changes))
	for i := range e.Changes {
		rendered = append(rendered, e.Changes[i].String())
	}
	return strings.Join(rendered, ", ")
}

// Compare checks the measurements in this set against those recorded in
// the supplied baseline, returning nil if they are equivalent and a
// *[MismatchError] describing every difference if not.
//
// The first pass walks this set to detect identifiers that were added or
// whose digests changed since the baseline was taken; the second walks the
// baseline to detect identifiers that have disappeared. A changed entry is
// therefore reported exactly once. Records within each pass are ordered by
// identifier so the report is deterministic and parseable.
func (s MeasurementSet) Compare(baseline MeasurementSet) error {
	var changes []Change

	// what we have now
	for _, id := range s.sortedIDs() {
		csum := s[id]
		old, exists := baseline[id]
		switch {
		case !exists:
			changes = append(changes, Change{ID: id, Kind: ChangeAdded, New: csum})
		case old != csum:
			changes = append(changes, Change{ID: id, Kind: ChangeChanged, Old: old, New: csum})
		}
	}

	// what we had then
	for _, id := range baseline.sortedIDs() {
		if _, exists := s[id]; !exists {
			changes = append(changes, Change{ID: id, Kind: ChangeRemoved, Old: baseline[id]})
		}
	}

	if len(changes) > 0 {
		return &MismatchError{Changes: changes}
	}
	return nil
}
