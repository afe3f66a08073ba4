// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowListExactMatch(t *testing.T) {
	a := NewAllowList([]string{"10.23.252.3"})
	assert.True(t, a.Allowed("10.23.252.3"))
	assert.False(t, a.Allowed("10.23.252.4"))
}

func TestAllowListLastOctetRange(t *testing.T) {
	a := NewAllowList([]string{"10.23.18.218-223"})
	assert.True(t, a.Allowed("10.23.18.218"))
	assert.True(t, a.Allowed("10.23.18.221"))
	assert.True(t, a.Allowed("10.23.18.223"))
	assert.False(t, a.Allowed("10.23.18.224"))
	assert.False(t, a.Allowed("10.24.18.220"))
}

func TestAllowListCIDR(t *testing.T) {
	a := NewAllowList([]string{"10.24.18.0/24"})
	assert.True(t, a.Allowed("10.24.18.220"))
	assert.False(t, a.Allowed("10.25.18.220"))
}

func TestAllowListSkipsMalformedEntries(t *testing.T) {
	a := NewAllowList([]string{"not-an-ip", "10.23.252.3"})
	assert.True(t, a.Allowed("10.23.252.3"))
}

func TestAllowListEmptyAllowsNothing(t *testing.T) {
	a := NewAllowList(nil)
	assert.False(t, a.Allowed("10.23.252.3"))
}
