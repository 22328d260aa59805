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
	"errors"

	"github.com/snapcore/snapd/testutil"

	. "gopkg.in/check.v1"

	. "github.com/snapcore/fwdrift"
)

type serializeSuite struct{}

var _ = Suite(&serializeSuite{})

func (s *serializeSuite) TestMarshalTextSortsByIdentifier(c *C) {
	set := NewMeasurementSet()
	set.AddChecksum("UEFI:PK", "22")
	set.AddChecksum("ACPI:SLIC", "11")
	set.AddChecksum("UEFI:BootOrder", "33")

	data, err := set.MarshalText()
	c.Assert(err, IsNil)
	c.Check(string(data), Equals, "ACPI:SLIC=11\nUEFI:BootOrder=33\nUEFI:PK=22")
}

func (s *serializeSuite) TestMarshalTextEmptySet(c *C) {
	set := NewMeasurementSet()
	data, err := set.MarshalText()
	c.Assert(err, IsNil)
	c.Check(data, IsNil)
}

func (s *serializeSuite) TestRoundTrip(c *C) {
	set := NewMeasurementSet()
	set.AddChecksum("UEFI:BootOrder", "aa")
	set.AddChecksum("UEFI:Boot0000", "bb")
	set.AddChecksum("ACPI:SLIC", "cc")

	data, err := set.MarshalText()
	c.Assert(err, IsNil)

	restored := NewMeasurementSet()
	c.Assert(restored.UnmarshalText(data), IsNil)
	c.Check(restored, DeepEquals, set)
}

func (s *serializeSuite) TestRoundTripInsertionOrderIrrelevant(c *C) {
	set1 := NewMeasurementSet()
	set1.AddChecksum("A", "1")
	set1.AddChecksum("B", "2")

	set2 := NewMeasurementSet()
	set2.AddChecksum("B", "2")
	set2.AddChecksum("A", "1")

	data1, err := set1.MarshalText()
	c.Assert(err, IsNil)
	data2, err := set2.MarshalText()
	c.Assert(err, IsNil)
	c.Check(string(data1), Equals, string(data2))
}

func (s *serializeSuite) TestUnmarshalTextSkipsCommentsAndBlanks(c *C) {
	set := NewMeasurementSet()
	c.Assert(set.UnmarshalText([]byte("# comment\n\nA=1\n")), IsNil)
	c.Check(set, DeepEquals, MeasurementSet{"A": "1"})
}

func (s *serializeSuite) TestUnmarshalTextRejectsLineWithoutSeparator(c *C) {
	set := NewMeasurementSet()
	err := set.UnmarshalText([]byte("UEFI:BootOrder"))
	c.Check(err, ErrorMatches, `failed to parse: UEFI:BootOrder`)

	var pe *ParseError
	c.Assert(errors.As(err, &pe), testutil.IsTrue)
	c.Check(pe.Input, Equals, "UEFI:BootOrder")
}

func (s *serializeSuite) TestUnmarshalTextRejectsAtomically(c *C) {
	set := NewMeasurementSet()
	set.AddChecksum("X", "9")

	err := set.UnmarshalText([]byte("A=1\nbogus line\nB=2"))
	c.Check(err, ErrorMatches, `failed to parse: A=1\nbogus line\nB=2`)
	c.Check(set, DeepEquals, MeasurementSet{"X": "9"})
}

func (s *serializeSuite) TestUnmarshalTextMergesIntoExistingSet(c *C) {
	set := NewMeasurementSet()
	set.AddChecksum("A", "1")

	c.Assert(set.UnmarshalText([]byte("A=3\nB=2")), IsNil)
	c.Check(set, DeepEquals, MeasurementSet{"A": "3", "B": "2"})
}

func (s *serializeSuite) TestUnmarshalTextIntoNilSet(c *C) {
	var set MeasurementSet
	c.Assert(set.UnmarshalText([]byte("A=1")), IsNil)
	c.Check(set, DeepEquals, MeasurementSet{"A": "1"})
}
