// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reassembler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cise-syslog/ingestd/internal/model"
)

func TestFeedEmitsOnceAllFragmentsArrive(t *testing.T) {
	base := time.Date(2026, 7, 31, 10, 0, 0, 0, time.UTC)
	clock := base
	r := New(30*time.Second, func() time.Time { return clock })

	frag := func(idx int, text string) model.Fragment {
		return model.Fragment{UID: "u1", Total: 3, Index: idx, Text: text, SourceIP: "1.2.3.4"}
	}

	complete, swept := r.Feed(frag(1, "CISE_Passed 1 3 1 part-b "))
	assert.Nil(t, complete)
	assert.Empty(t, swept)

	complete, _ = r.Feed(frag(0, "CISE_Passed 1 3 0 part-a "))
	assert.Nil(t, complete)

	complete, _ = r.Feed(frag(2, "part-c"))
	require.NotNil(t, complete)
	assert.Equal(t, "part-a part-b part-c", complete.Text)
	assert.Equal(t, "1.2.3.4", complete.SourceIP)
	assert.Equal(t, 0, r.Pending())
}

func TestFeedSweepsTimedOutUnrelatedBuffers(t *testing.T) {
	base := time.Date(2026, 7, 31, 10, 0, 0, 0, time.UTC)
	clock := base
	r := New(30*time.Second, func() time.Time { return clock })

	r.Feed(model.Fragment{UID: "stale", Total: 2, Index: 0, Text: "only-half "})

	clock = base.Add(31 * time.Second)
	_, swept := r.Feed(model.Fragment{UID: "fresh", Total: 5, Index: 0, Text: "x"})

	require.Len(t, swept, 1)
	assert.Equal(t, "only-half ", swept[0].Text)
	assert.Equal(t, 1, r.Pending()) // "fresh" still incomplete
}

func TestFeedToleratesDuplicateIndexInArrivalOrder(t *testing.T) {
	r := New(30*time.Second, func() time.Time { return time.Unix(0, 0) })

	frag := func(idx int, text string) model.Fragment {
		return model.Fragment{UID: "dup", Total: 3, Index: idx, Text: text}
	}

	r.Feed(frag(0, "a"))
	r.Feed(frag(0, "b"))
	complete, _ := r.Feed(frag(1, "c"))

	require.NotNil(t, complete)
	assert.Equal(t, "abc", complete.Text)
}

func TestIsFragmentDetectsChunkHeader(t *testing.T) {
	_, ok := IsFragment(model.RawDatagram{Text: "CISE_Passed_Authentications 7 2 0 hello"})
	assert.True(t, ok)

	_, ok = IsFragment(model.RawDatagram{Text: "no header here"})
	assert.False(t, ok)
}
