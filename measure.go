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
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	efi "github.com/canonical/go-efilib"
	"github.com/canonical/go-tpm2"
	"github.com/canonical/tcglog-parser"

	"github.com/snapcore/fwdrift/internal/hostenv"
)

const (
	// platformFirmwarePCR is the SRTM, POST BIOS, and Embedded Drivers PCR.
	platformFirmwarePCR tpm2.Handle = 0

	// secureBootPolicyPCR is the Secure Boot Policy Measurements PCR.
	secureBootPolicyPCR tpm2.Handle = 7
)

// importantVars identifies the boot configuration and signature database
// variables that are measured whenever they can be read, whether or not
// their payload is empty.
var importantVars = []efi.VariableDescriptor{
	{Name: "BootOrder", GUID: efi.GlobalVariable},
	{Name: "BootCurrent", GUID: efi.GlobalVariable},
	{Name: "KEK", GUID: efi.GlobalVariable},
	{Name: "PK", GUID: efi.GlobalVariable},
	{Name: "db", GUID: efi.ImageSecurityDatabaseGuid},
	{Name: "dbx", GUID: efi.ImageSecurityDatabaseGuid},
}

// acpiTables names the ACPI tables that are measured when present and
// non-empty.
var acpiTables = []string{"SLIC"}

// MeasureParams provides optional parameters for [MeasurementSet.Measure].
type MeasureParams struct {
	// ExtraVariables identifies additional EFI variables to measure on
	// top of the built-in set. Like the built-in variables, presence
	// alone is sufficient for an extra variable to be measured.
	ExtraVariables []efi.VariableDescriptor

	// ExtraACPITables names additional ACPI tables to measure. Like the
	// built-in tables, an extra table is measured only when present and
	// non-empty.
	ExtraACPITables []string
}

// Measure populates this set from the supplied host environment, running
// the UEFI variable, ACPI table, and TCG event log sources in turn.
//
// Individual items that are absent or unreadable are skipped silently.
// This per-item tolerance lets the same collector run unmodified across
// heterogeneous firmware environments, including ones without UEFI, ACPI,
// or TPM support. The only failure mode is that the set is still empty
// after all sources have run, in which case ErrNoMeasurements is returned.
func (s MeasurementSet) Measure(ctx context.Context, env hostenv.HostEnvironment, params *MeasureParams) error {
	if params == nil {
		params = &MeasureParams{}
	}

	s.measureUEFI(env.VarContext(ctx), params.ExtraVariables)
	s.measureACPI(env, params.ExtraACPITables)
	s.measureEventLog(env)

	if s.Len() == 0 {
		return ErrNoMeasurements
	}
	return nil
}

// measureUEFI measures the important boot configuration and signature
// database variables, plus every populated Boot#### load option. The
// supplied context must carry a go-efilib variable backend.
func (s MeasurementSet) measureUEFI(ctx context.Context, extra []efi.VariableDescriptor) {
	vars := make([]efi.VariableDescriptor, 0, len(importantVars)+len(extra))
	vars = append(vars, importantVars...)
	vars = append(vars, extra...)

	for _, desc := range vars {
		data, _, err := efi.ReadVariable(ctx, desc.Name, desc.GUID)
		if err != nil {
			continue
		}
		s.AddMeasurement("UEFI:"+desc.Name, data)
	}

	// Boot#### load options. Unlike the important variables above, empty
	// slots are skipped.
	for i := 0; i < 0xff; i++ {
		name := fmt.Sprintf("Boot%04X", i)
		data, _, err := efi.ReadVariable(ctx, name, efi.GlobalVariable)
		if err != nil || len(data) == 0 {
			continue
		}
		s.AddMeasurement("UEFI:"+name, data)
	}
}

// measureACPI measures the configured ACPI tables when they are present
// and non-empty.
func (s MeasurementSet) measureACPI(env hostenv.HostEnvironment, extra []string) {
	tables := make([]string, 0, len(acpiTables)+len(extra))
	tables = append(tables, acpiTables...)
	tables = append(tables, extra...)

	for _, table := range tables {
		data, err := env.ReadACPITable(table)
		if err != nil || len(data) == 0 {
			continue
		}
		s.AddMeasurement("ACPI:"+table, data)
	}
}

// measureEventLog records the SHA-256 values of the platform firmware and
// secure boot policy PCRs, reconstructed from the TCG event log. Unlike
// the boot manager PCRs these are stable across identical boots, so a
// change in one indicates that the firmware or its secure boot
// configuration changed.
func (s MeasurementSet) measureEventLog(env hostenv.HostEnvironment) {
	log, err := env.ReadEventLog()
	if err != nil {
		return
	}

	alg := tpm2.HashAlgorithmSHA256
	if !log.Algorithms.Contains(alg) {
		return
	}

	for _, pcr := range []tpm2.Handle{platformFirmwarePCR, secureBootPolicyPCR} {
		value, err := replayPCRFromLog(log, alg, pcr)
		if err != nil {
			continue
		}
		s.AddChecksum(fmt.Sprintf("TPM:PCR%d", pcr), hex.EncodeToString(value))
	}
}

// replayPCRFromLog reconstructs the final value of the specified PCR in
// the specified bank by extending every measured event for it, in log
// order. EV_NO_ACTION events are informational and not measured, with the
// exception of the StartupLocality event which sets the initial value of
// PCR0 - the least significant byte of the reset value is the locality
// that TPM2_Startup was executed from (or 4 for a H-CRTM event sequence).
func replayPCRFromLog(log *tcglog.Log, alg tpm2.HashAlgorithmId, pcr tpm2.Handle) ([]byte, error) {
	value := make([]byte, alg.Size())
	extended := false

	for _, ev := range log.Events {
		if ev.PCRIndex != pcr {
			continue
		}

		if ev.EventType == tcglog.EventTypeNoAction {
			startupLocalityData, isStartupLocality := ev.Data.(*tcglog.StartupLocalityEventData)
			if !isStartupLocality || pcr != platformFirmwarePCR {
				continue
			}
			if extended {
				return nil, errors.New("unexpected StartupLocality event after measurements already made")
			}
			value[len(value)-1] = startupLocalityData.StartupLocality
			continue
		}

		digest, exists := ev.Digests[alg]
		if !exists {
			return nil, fmt.Errorf("event missing %v digest", alg)
		}

		h := alg.NewHash()
		h.Write(value)
		h.Write(digest)
		value = h.Sum(nil)
		extended = true
	}

	if !extended {
		return nil, errors.New("no measured events for PCR")
	}
	return value, nil
}
