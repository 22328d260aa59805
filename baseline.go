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
	"os"

	"github.com/snapcore/snapd/osutil"
	"golang.org/x/xerrors"
)

// SaveBaseline atomically writes the serialized form of the supplied set
// to the file at the specified path, for later use as the trusted
// reference in [MeasurementSet.Compare]. The file is UTF-8 text, one
// "identifier=digest" pair per line, and can be annotated by hand with
// '#' comments.
//
// An empty set has no valid serialized form and cannot be saved -
// attempting to do so returns ErrNoMeasurements.
func SaveBaseline(path string, set MeasurementSet) error {
	if set.Len() == 0 {
		return ErrNoMeasurements
	}

	data, err := set.MarshalText()
	if err != nil {
		return xerrors.Errorf("cannot serialize measurements: %w", err)
	}
	data = append(data, '\n')

	if err := osutil.AtomicWriteFile(path, data, 0644, 0); err != nil {
		return xerrors.Errorf("cannot write baseline: %w", err)
	}
	return nil
}

// LoadBaseline reads a previously saved baseline from the file at the
// specified path into a new MeasurementSet. A malformed file is rejected
// with a *[ParseError] without returning a partially populated set.
func LoadBaseline(path string) (MeasurementSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("cannot read baseline: %w", err)
	}

	set := NewMeasurementSet()
	if err := set.UnmarshalText(data); err != nil {
		return nil, err
	}
	return set, nil
}
