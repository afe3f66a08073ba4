// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSingleValue(t *testing.T) {
	msg := "CISE_Failed_Attempts: ... UserName=alice, Device IP Address=10.0.0.5, Remote-Address=10.0.0.9, FailureReason=bad password, NetworkDeviceName=ASA-CORE, RequestLatency=12"

	fields := Extract(msg)

	assert.Equal(t, "alice", fields.Get(FieldUserName))
	assert.Equal(t, "10.0.0.5", fields.Get(FieldDeviceIPAddress))
	assert.Equal(t, "10.0.0.9", fields.Get(FieldRemoteAddress))
	assert.Equal(t, "bad password", fields.Get(FieldFailureReason))
	assert.Equal(t, "ASA-CORE", fields.Get(FieldNetworkDeviceName))
	assert.Equal(t, "12", fields.Get(FieldRequestLatency))
	assert.False(t, fields.Has(FieldCalledStationID))
}

func TestExtractUserNameDedupLowercasesAndStripsHyphen(t *testing.T) {
	msg := "UserName=Al-ice, more text UserName=ALICE, <end UserName=alice, <end"

	fields := Extract(msg)

	assert.Equal(t, "alice", fields.Get(FieldUserName))
}

func TestExtractMultipleUniqueValuesJoined(t *testing.T) {
	msg := "NetworkDeviceGroups=Location#Building-A, NetworkDeviceGroups=Location#Building-B, <end"

	fields := Extract(msg)

	got := fields.Get(FieldNDLocation)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "Building-A")
	assert.Contains(t, got, "Building-B")
	assert.Contains(t, got, ", ")
}

func TestExtractCmdSetStripsArgPrefix(t *testing.T) {
	msg := "CISE_TACACS_Accounting ... CmdSet=[ CmdAV=show CmdArgAV=running-config ]"

	fields := Extract(msg)

	assert.Equal(t, "show running-config", fields.Get(FieldCmdSet))
}

func TestParseChunkHeader(t *testing.T) {
	uid, total, index, ok := ParseChunkHeader("CISE_Passed_Authentications 482910 3 1 rest of message")
	require.True(t, ok)
	assert.Equal(t, "482910", uid)
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, index)

	_, _, _, ok = ParseChunkHeader("no chunk header here")
	assert.False(t, ok)
}

func TestTimestampEmbeddedPreferred(t *testing.T) {
	ts, ok := Timestamp("123 456 2026-07-31 10:15:00.512 +00:00 rest")
	require.True(t, ok)
	assert.Equal(t, "2026-07-31 10:15:00.512 +00:00", ts)

	_, ok = Timestamp("no timestamp in this message")
	assert.False(t, ok)
}
