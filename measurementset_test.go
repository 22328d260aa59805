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

package fwdrift_test

import (
	. "gopkg.in/check.v1"

	. "github.com/snapcore/fwdrift"
)

type measurementSetSuite struct{}

var _ = Suite(&measurementSetSuite{})

func (s *measurementSetSuite) TestNewMeasurementSetIsEmpty(c *C) {
	set := NewMeasurementSet()
	c.Check(set.Len(), Equals, 0)
}

func (s *measurementSetSuite) TestAddChecksum(c *C) {
	set := NewMeasurementSet()
	set.AddChecksum("UEFI:BootOrder", "aabbcc")
	set.AddChecksum("ACPI:SLIC", "ddeeff")
	c.Check(set.Len(), Equals, 2)
	c.Check(set["UEFI:BootOrder"], Equals, "aabbcc")
	c.Check(set["ACPI:SLIC"], Equals, "ddeeff")
}

func (s *measurementSetSuite) TestAddChecksumReplaces(c *C) {
	set := NewMeasurementSet()
	set.AddChecksum("UEFI:PK", "1234")
	set.AddChecksum("UEFI:PK", "5678")
	c.Check(set.Len(), Equals, 1)
	c.Check(set["UEFI:PK"], Equals, "5678")
}

func (s *measurementSetSuite) TestAddMeasurement(c *C) {
	set := NewMeasurementSet()
	blob := []byte("mock boot order")
	set.AddMeasurement("UEFI:BootOrder", blob)
	c.Check(set["UEFI:BootOrder"], Equals, digestString(blob))
}

func (s *measurementSetSuite) TestAddMeasurementEmptyBlob(c *C) {
	set := NewMeasurementSet()
	set.AddMeasurement("UEFI:BootCurrent", nil)
	c.Check(set["UEFI:BootCurrent"], Equals, digestString(nil))
}
