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
	"errors"
	"fmt"
)

// ErrNoMeasurements is returned from [MeasurementSet.Measure] if no
// measurement source yielded anything at all, which indicates an
// environment without any supported source rather than a partially
// unavailable one.
var ErrNoMeasurements = errors.New("no measurements")

// ParseError is returned from [MeasurementSet.UnmarshalText] when the
// supplied text contains a line that is neither blank, a comment, nor a
// well formed "identifier=digest" pair. It carries the complete original
// input.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse: %s", e.Input)
}
