// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package counters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeltaComputesLostFigures(t *testing.T) {
	prev := Snapshot{Received: 100, Handled: 90, ReadyForInsertion: 85, Rejected: 2}
	cur := Snapshot{Received: 150, Handled: 130, ReadyForInsertion: 120, Rejected: 5}

	d := prev.Delta(cur)

	assert.Equal(t, int64(50), d.Received)
	assert.Equal(t, int64(40), d.Handled)
	assert.Equal(t, int64(35), d.ReadyForInsertion)
	assert.Equal(t, int64(3), d.Rejected)
	assert.Equal(t, int64(10), d.LostBeforeHandling)
	assert.Equal(t, int64(5), d.LostDuringHandling)
}

func TestPerIPBreakdownTracksReceivedAndUnhandled(t *testing.T) {
	c := New()
	c.RecordReceived("10.23.18.218")
	c.RecordReceived("10.23.18.218")
	c.RecordUnhandled("10.23.18.218")
	c.RecordReceived("10.23.18.219")

	breakdown := c.PerIPBreakdown()

	assert.Equal(t, [2]int64{2, 1}, breakdown["10.23.18.218"])
	assert.Equal(t, [2]int64{1, 0}, breakdown["10.23.18.219"])
}
