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

type compareSuite struct{}

var _ = Suite(&compareSuite{})

func (s *compareSuite) TestCompareIdentity(c *C) {
	set := NewMeasurementSet()
	set.AddChecksum("UEFI:PK", "11")
	set.AddChecksum("ACPI:SLIC", "22")
	c.Check(set.Compare(set), IsNil)
}

func (s *compareSuite) TestCompareEquivalentSets(c *C) {
	current := NewMeasurementSet()
	current.AddChecksum("A", "1")
	baseline := NewMeasurementSet()
	baseline.AddChecksum("A", "1")
	c.Check(current.Compare(baseline), IsNil)
}

func (s *compareSuite) TestCompareBothEmpty(c *C) {
	c.Check(NewMeasurementSet().Compare(NewMeasurementSet()), IsNil)
}

func (s *compareSuite) TestCompareChangedAndAdded(c *C) {
	baseline := MeasurementSet{"A": "1"}
	current := MeasurementSet{"A": "2", "B": "3"}

	err := current.Compare(baseline)
	c.Check(err, ErrorMatches, `A=1->2, B=MISSING->3`)

	var mismatch *MismatchError
	c.Assert(errors.As(err, &mismatch), testutil.IsTrue)
	c.Check(mismatch.Changes, DeepEquals, []Change{
		{ID: "A", Kind: ChangeChanged, Old: "1", New: "2"},
		{ID: "B", Kind: ChangeAdded, New: "3"},
	})
}

func (s *compareSuite) TestCompareRemoved(c *C) {
	baseline := MeasurementSet{"A": "1", "C": "9"}
	current := MeasurementSet{"A": "1"}

	err := current.Compare(baseline)
	c.Check(err, ErrorMatches, `C=9->MISSING`)

	var mismatch *MismatchError
	c.Assert(errors.As(err, &mismatch), testutil.IsTrue)
	c.Check(mismatch.Changes, DeepEquals, []Change{
		{ID: "C", Kind: ChangeRemoved, Old: "9"},
	})
}

func (s *compareSuite) TestCompareAnchorsPassesSeparately(c *C) {
	// additions are reported from the walk of the current set, removals
	// from the walk of the baseline, so a removed "A" sorts after an
	// added "Z"
	baseline := MeasurementSet{"A": "2"}
	current := MeasurementSet{"Z": "1"}

	err := current.Compare(baseline)
	c.Check(err, ErrorMatches, `Z=MISSING->1, A=2->MISSING`)
}

func (s *compareSuite) TestCompareChangedReportedOnce(c *C) {
	baseline := MeasurementSet{"A": "1", "B": "2"}
	current := MeasurementSet{"A": "9", "B": "2"}

	err := current.Compare(baseline)
	c.Check(err, ErrorMatches, `A=1->9`)

	var mismatch *MismatchError
	c.Assert(errors.As(err, &mismatch), testutil.IsTrue)
	c.Check(mismatch.Changes, HasLen, 1)
}
