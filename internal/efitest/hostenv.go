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

package efitest

import (
	"context"

	efi "github.com/canonical/go-efilib"
	"github.com/canonical/tcglog-parser"

	"github.com/snapcore/fwdrift/internal/hostenv"
)

// MockHostEnvironment provides a mock platform state environment.
type MockHostEnvironment struct {
	Vars       MockVars
	ACPITables map[string][]byte
	Log        *tcglog.Log
}

// NewMockHostEnvironment returns a new MockHostEnvironment with the
// supplied EFI variables, no ACPI tables and no TCG event log.
func NewMockHostEnvironment(vars MockVars) *MockHostEnvironment {
	return &MockHostEnvironment{
		Vars:       vars,
		ACPITables: make(map[string][]byte)}
}

// AddACPITable adds the named mock ACPI table.
func (e *MockHostEnvironment) AddACPITable(name string, data []byte) *MockHostEnvironment {
	e.ACPITables[name] = data
	return e
}

// WithLog attaches a TCG event log to this environment.
func (e *MockHostEnvironment) WithLog(log *tcglog.Log) *MockHostEnvironment {
	e.Log = log
	return e
}

// VarContext implements [hostenv.HostEnvironment.VarContext].
func (e *MockHostEnvironment) VarContext(parent context.Context) context.Context {
	return context.WithValue(parent, efi.VarsBackendKey{}, e.Vars)
}

// ReadACPITable implements [hostenv.HostEnvironment.ReadACPITable].
func (e *MockHostEnvironment) ReadACPITable(name string) ([]byte, error) {
	data, found := e.ACPITables[name]
	if !found {
		return nil, hostenv.ErrNoACPITable
	}
	return data, nil
}

// ReadEventLog implements [hostenv.HostEnvironment.ReadEventLog].
func (e *MockHostEnvironment) ReadEventLog() (*tcglog.Log, error) {
	if e.Log == nil {
		return nil, hostenv.ErrNoEventLog
	}
	return e.Log, nil
}
