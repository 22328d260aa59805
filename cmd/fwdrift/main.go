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
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/snapcore/fwdrift"
	"github.com/snapcore/fwdrift/internal/hostenv"
)

type options struct {
	Save     string `short:"s" long:"save" description:"Measure the platform and write the result to FILE as a new baseline" value-name:"FILE"`
	Baseline string `short:"b" long:"baseline" description:"Measure the platform and compare the result against the baseline in FILE" value-name:"FILE"`
	Config   string `short:"c" long:"config" description:"Read extra variables and ACPI tables to measure from the YAML file FILE" value-name:"FILE"`
}

var opts options

func run() error {
	if _, err := flags.Parse(&opts); err != nil {
		return err
	}
	if opts.Save != "" && opts.Baseline != "" {
		return errors.New("cannot specify both --save and --baseline")
	}

	var params *fwdrift.MeasureParams
	if opts.Config != "" {
		var err error
		params, err = loadConfig(opts.Config)
		if err != nil {
			return err
		}
	}

	current := fwdrift.NewMeasurementSet()
	if err := current.Measure(context.Background(), hostenv.DefaultEnv, params); err != nil {
		return err
	}

	switch {
	case opts.Save != "":
		return fwdrift.SaveBaseline(opts.Save, current)
	case opts.Baseline != "":
		baseline, err := fwdrift.LoadBaseline(opts.Baseline)
		if err != nil {
			return err
		}
		// A mismatch error is the rendered diff.
		return current.Compare(baseline)
	default:
		data, err := current.MarshalText()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
}

func main() {
	if err := run(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
