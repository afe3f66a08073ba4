// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cise-syslog/ingestd/internal/model"
)

func TestQueueTryPushDropsWhenFull(t *testing.T) {
	q := NewQueue(2)

	require.True(t, q.TryPush(model.RawDatagram{Text: "a"}))
	require.True(t, q.TryPush(model.RawDatagram{Text: "b"}))
	assert.False(t, q.TryPush(model.RawDatagram{Text: "c"}))
	assert.Equal(t, 2, q.Len())
}

func TestQueuePopTimesOutWhenEmpty(t *testing.T) {
	q := NewQueue(1)
	_, ok := q.Pop(20 * time.Millisecond)
	assert.False(t, ok)
}

func TestQueuePopReturnsPushedItem(t *testing.T) {
	q := NewQueue(1)
	q.TryPush(model.RawDatagram{Text: "hello", SourceIP: "1.2.3.4"})

	d, ok := q.Pop(time.Second)
	require.True(t, ok)
	assert.Equal(t, "hello", d.Text)
	assert.Equal(t, "1.2.3.4", d.SourceIP)
}
