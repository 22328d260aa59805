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

// Package hostenv abstracts out the sources of measurable platform state,
// so that consumers of the API can provide a custom mechanism to read EFI
// variables, ACPI tables, or the TCG event log.
package hostenv

import (
	"context"
	"errors"

	"github.com/canonical/tcglog-parser"
)

var (
	// ErrNoACPITable is returned from HostEnvironment.ReadACPITable if
	// the platform does not provide the requested table.
	ErrNoACPITable = errors.New("ACPI table does not exist")

	// ErrNoEventLog is returned from HostEnvironment.ReadEventLog if no
	// TCG event log is available.
	ErrNoEventLog = errors.New("no TCG event log is available")
)

// HostEnvironment is an interface that abstracts out a host environment.
type HostEnvironment interface {
	// VarContext returns a copy of parent containing a VarsBackend,
	// keyed by efi.VarsBackendKey, for reading EFI variables via
	// go-efilib. This context can be passed to any go-efilib function
	// that interacts with EFI variables.
	VarContext(parent context.Context) context.Context

	// ReadACPITable returns the raw content of the named ACPI table, or
	// ErrNoACPITable if the platform does not provide it.
	ReadACPITable(name string) ([]byte, error)

	// ReadEventLog reads the TCG event log.
	ReadEventLog() (*tcglog.Log, error)
}
