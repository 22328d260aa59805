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

// Package efitest provides mock platform state environments for testing
// measurement collection.
package efitest

import (
	"errors"

	efi "github.com/canonical/go-efilib"
)

// VarEntry describes the contents of a mock EFI variable.
type VarEntry struct {
	Attrs   efi.VariableAttributes
	Payload []byte
}

// MockVars is a collection of mock EFI variables.
type MockVars map[efi.VariableDescriptor]*VarEntry

// MakeMockVars creates a new MockVars.
func MakeMockVars() MockVars {
	return make(MockVars)
}

// Get implements [efi.VarsBackend.Get].
func (v MockVars) Get(name string, guid efi.GUID) (efi.VariableAttributes, []byte, error) {
	entry, found := v[efi.VariableDescriptor{Name: name, GUID: guid}]
	if !found {
		return 0, nil, efi.ErrVarNotExist
	}
	return entry.Attrs, entry.Payload, nil
}

// Set implements [efi.VarsBackend.Set].
func (v MockVars) Set(name string, guid efi.GUID, attrs efi.VariableAttributes, data []byte) error {
	return errors.New("not implemented")
}

// List implements [efi.VarsBackend.List].
func (v MockVars) List() ([]efi.VariableDescriptor, error) {
	return nil, errors.New("not implemented")
}

// AddVar adds the specified mock variable.
func (v MockVars) AddVar(name string, guid efi.GUID, attrs efi.VariableAttributes, data []byte) MockVars {
	v[efi.VariableDescriptor{Name: name, GUID: guid}] = &VarEntry{Attrs: attrs, Payload: data}
	return v
}

// AddGlobalVar adds a mock variable in the EFI global namespace, such as
// BootOrder or one of the Boot#### load options.
func (v MockVars) AddGlobalVar(name string, data []byte) MockVars {
	return v.AddVar(name, efi.GlobalVariable, efi.AttributeNonVolatile|efi.AttributeBootserviceAccess|efi.AttributeRuntimeAccess, data)
}

// AddSecurityDatabase adds a mock signature database variable in the image
// security database namespace, such as db or dbx.
func (v MockVars) AddSecurityDatabase(name string, data []byte) MockVars {
	return v.AddVar(name, efi.ImageSecurityDatabaseGuid, efi.AttributeNonVolatile|efi.AttributeBootserviceAccess|efi.AttributeRuntimeAccess|efi.AttributeTimeBasedAuthenticatedWriteAccess, data)
}
