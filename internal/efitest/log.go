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
	_ "crypto/sha1"
	_ "crypto/sha256"

	"github.com/canonical/go-tpm2"
	"github.com/canonical/tcglog-parser"
)

// LogEvent describes one measured event for [NewLog].
type LogEvent struct {
	PCRIndex  tpm2.Handle
	EventType tcglog.EventType
	Data      []byte
}

// LogOptions provides options for [NewLog].
type LogOptions struct {
	Algorithms      []tpm2.HashAlgorithmId // the digest algorithms to include, SHA-256 only if unset
	StartupLocality uint8                  // specify a startup locality other than 0
}

// NewLog creates a mock TCG log containing the supplied measured events,
// with each event's digests computed from its data in every requested
// algorithm.
func NewLog(opts *LogOptions, events ...*LogEvent) *tcglog.Log {
	if opts == nil {
		opts = &LogOptions{}
	}
	algs := opts.Algorithms
	if len(algs) == 0 {
		algs = []tpm2.HashAlgorithmId{tpm2.HashAlgorithmSHA256}
	}

	var digestSizes []tcglog.EFISpecIdEventAlgorithmSize
	for _, alg := range algs {
		digestSizes = append(digestSizes,
			tcglog.EFISpecIdEventAlgorithmSize{
				AlgorithmId: alg,
				DigestSize:  uint16(alg.Size()),
			})
	}

	logEvents := []*tcglog.Event{
		{
			PCRIndex:  0,
			EventType: tcglog.EventTypeNoAction,
			Digests:   tcglog.DigestMap{tpm2.HashAlgorithmSHA1: make(tpm2.Digest, tpm2.HashAlgorithmSHA1.Size())},
			Data: &tcglog.SpecIdEvent03{
				SpecVersionMajor: 2,
				UintnSize:        2,
				DigestSizes:      digestSizes,
			},
		},
	}

	if opts.StartupLocality > 0 {
		ev := &tcglog.Event{
			PCRIndex:  0,
			EventType: tcglog.EventTypeNoAction,
			Digests:   make(tcglog.DigestMap),
			Data:      &tcglog.StartupLocalityEventData{StartupLocality: opts.StartupLocality},
		}
		for _, alg := range algs {
			ev.Digests[alg] = make(tpm2.Digest, alg.Size())
		}
		logEvents = append(logEvents, ev)
	}

	for _, event := range events {
		ev := &tcglog.Event{
			PCRIndex:  event.PCRIndex,
			EventType: event.EventType,
			Digests:   make(tcglog.DigestMap),
			Data:      tcglog.OpaqueEventData(event.Data),
		}
		for _, alg := range algs {
			h := alg.NewHash()
			h.Write(event.Data)
			ev.Digests[alg] = h.Sum(nil)
		}
		logEvents = append(logEvents, ev)
	}

	return tcglog.NewLogForTesting(logEvents)
}
