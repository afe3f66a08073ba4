// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package counters holds the process-wide, atomically-updated counters the
// supervisor reports deltas for, plus a per-source-IP breakdown the
// supervisor also samples for its monitoring output.
package counters

import "sync/atomic"

// Counters are monotonic for the life of the process; the supervisor reads
// them on a fixed cadence and reports deltas, never resetting them.
type Counters struct {
	Received           atomic.Int64
	Handled            atomic.Int64
	ReadyForInsertion  atomic.Int64
	Rejected           atomic.Int64

	perIP sourceIPTable
}

// New returns a zeroed Counters.
func New() *Counters {
	return &Counters{perIP: newSourceIPTable()}
}

// Snapshot is a point-in-time read of every counter, used both for CSV
// delta reporting and for tests.
type Snapshot struct {
	Received          int64
	Handled           int64
	ReadyForInsertion int64
	Rejected          int64
}

func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Received:          c.Received.Load(),
		Handled:           c.Handled.Load(),
		ReadyForInsertion: c.ReadyForInsertion.Load(),
		Rejected:          c.Rejected.Load(),
	}
}

// Delta computes the lost-before-handling / lost-during-handling figures
// the supervisor's CSV carries, relative to a prior snapshot.
type Delta struct {
	Received            int64
	Handled             int64
	ReadyForInsertion   int64
	Rejected            int64
	LostBeforeHandling  int64
	LostDuringHandling  int64
}

func (prev Snapshot) Delta(cur Snapshot) Delta {
	dReceived := cur.Received - prev.Received
	dHandled := cur.Handled - prev.Handled
	dReady := cur.ReadyForInsertion - prev.ReadyForInsertion
	dRejected := cur.Rejected - prev.Rejected
	return Delta{
		Received:           dReceived,
		Handled:            dHandled,
		ReadyForInsertion:  dReady,
		Rejected:           dRejected,
		LostBeforeHandling: dReceived - dHandled,
		LostDuringHandling: dHandled - dReady,
	}
}

// RecordReceived increments Received and that source IP's received count.
func (c *Counters) RecordReceived(sourceIP string) {
	c.Received.Add(1)
	c.perIP.add(sourceIP, fieldReceived)
}

// RecordUnhandled increments that source IP's unhandled count; it does not
// touch Rejected, which is reserved for sink validation failures.
func (c *Counters) RecordUnhandled(sourceIP string) {
	c.perIP.add(sourceIP, fieldUnhandled)
}

// PerIPBreakdown returns a snapshot of received/unhandled counts by source
// IP, for the supervisor's counter CSV companion file.
func (c *Counters) PerIPBreakdown() map[string][2]int64 {
	return c.perIP.snapshot()
}
