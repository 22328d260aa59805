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

package hostenv

import (
	"context"
	"os"
	"path/filepath"

	efi "github.com/canonical/go-efilib"
	"github.com/canonical/tcglog-parser"

	"github.com/snapcore/fwdrift/internal/paths"
)

type defaultEnvImpl struct{}

// VarContext implements [HostEnvironment.VarContext].
func (defaultEnvImpl) VarContext(parent context.Context) context.Context {
	return efi.WithDefaultVarsBackend(parent)
}

// ReadACPITable implements [HostEnvironment.ReadACPITable].
func (defaultEnvImpl) ReadACPITable(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(paths.ACPITablesDir, name))
	switch {
	case os.IsNotExist(err):
		return nil, ErrNoACPITable
	case err != nil:
		return nil, err
	}
	return data, nil
}

// ReadEventLog implements [HostEnvironment.ReadEventLog].
func (defaultEnvImpl) ReadEventLog() (*tcglog.Log, error) {
	f, err := os.Open(paths.EventLogPath)
	switch {
	case os.IsNotExist(err):
		return nil, ErrNoEventLog
	case err != nil:
		return nil, err
	}
	defer f.Close()

	return tcglog.ReadLog(f, &tcglog.LogOptions{})
}

// DefaultEnv corresponds to the environment associated with the host
// machine.
var DefaultEnv = defaultEnvImpl{}
