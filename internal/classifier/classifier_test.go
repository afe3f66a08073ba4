// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cise-syslog/ingestd/internal/model"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestClassifyFTA(t *testing.T) {
	c, err := New(nil, fixedClock(time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	msg := model.WholeMessage{
		SourceIP: "1.2.3.4",
		Text: "CISE_Failed_Attempts: Failed-Attempt: Authentication failed, Protocol=Tacacs, " +
			"UserName=alice, Device IP Address=10.0.0.5, Remote-Address=10.0.0.9, " +
			"FailureReason=bad-password, NetworkDeviceName=ASA-CORE, RequestLatency=12, <end",
	}

	res := c.Classify(msg)

	require.Equal(t, Routed, res.Verdict)
	assert.Equal(t, model.FTA, res.Row.Table)
	assert.Equal(t, "1.2.3.4", res.Row.Values[1])
	assert.Equal(t, "alice", res.Row.Values[2])
	assert.Equal(t, "10.0.0.5", res.Row.Values[3])
	assert.Equal(t, "10.0.0.9", res.Row.Values[4])
	assert.Equal(t, 12, res.Row.Values[7])
}

func TestClassifyFWATakesPriorityOverFLA(t *testing.T) {
	c, err := New(nil, fixedClock(time.Now()))
	require.NoError(t, err)

	msg := model.WholeMessage{
		SourceIP: "5.6.7.8",
		Text: "CISE_Failed_Attempts: UserName=bob, NetworkDeviceName=WLC-CAMPUS, " +
			"Called-Station-ID=AA-BB-CC-DD-HO, FailureReason=no-match, <end",
	}

	res := c.Classify(msg)

	require.Equal(t, Routed, res.Verdict)
	assert.Equal(t, model.FWA, res.Row.Table)
}

func TestClassifyIgnoresRejectedAccounting(t *testing.T) {
	c, err := New(nil, fixedClock(time.Now()))
	require.NoError(t, err)

	res := c.Classify(model.WholeMessage{Text: "CISE_TACACS_Accounting: TACACS+ Accounting request rejected"})

	assert.Equal(t, Ignored, res.Verdict)
}

func TestClassifyUnhandledCarriesToken(t *testing.T) {
	c, err := New(nil, fixedClock(time.Now()))
	require.NoError(t, err)

	res := c.Classify(model.WholeMessage{Text: "CISE_Something_Else totally unrouted message"})

	assert.Equal(t, Unhandled, res.Verdict)
	assert.Equal(t, "CISE_Something_Else", res.Token)
}

func TestClassifyTCAExcludesTerminalPager(t *testing.T) {
	c, err := New(nil, fixedClock(time.Now()))
	require.NoError(t, err)

	msg := model.WholeMessage{
		SourceIP: "9.9.9.9",
		Text: "CISE_TACACS_Accounting: TACACS+ Accounting with Command, User=netadmin, " +
			"NetworkDeviceName=SW-1, Device IP Address=10.1.1.1, Remote-Address=10.1.1.2, " +
			"CmdSet=[ CmdAV=terminal pager 0 ]",
	}

	res := c.Classify(msg)

	assert.Equal(t, Unhandled, res.Verdict)
}
