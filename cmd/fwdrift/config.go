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

package main

import (
	"os"

	efi "github.com/canonical/go-efilib"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/snapcore/fwdrift"
)

// configFile describes vendor specific state to measure on top of the
// built-in variable and table lists, eg:
//
//	extra-variables:
//	  - name: SbatLevel
//	    guid: 605dab50-e046-4300-abb6-3dd810dd8b23
//	extra-acpi-tables:
//	  - MSDM
type configFile struct {
	ExtraVariables []struct {
		Name string `yaml:"name"`
		GUID string `yaml:"guid"`
	} `yaml:"extra-variables"`
	ExtraACPITables []string `yaml:"extra-acpi-tables"`
}

func loadConfig(path string) (*fwdrift.MeasureParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("cannot read config file: %w", err)
	}

	var cfg configFile
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, xerrors.Errorf("cannot parse config file: %w", err)
	}

	params := new(fwdrift.MeasureParams)
	for _, v := range cfg.ExtraVariables {
		guid, err := efi.DecodeGUIDString(v.GUID)
		if err != nil {
			return nil, xerrors.Errorf("cannot parse GUID for variable %s: %w", v.Name, err)
		}
		params.ExtraVariables = append(params.ExtraVariables, efi.VariableDescriptor{Name: v.Name, GUID: guid})
	}
	params.ExtraACPITables = cfg.ExtraACPITables
	return params, nil
}
