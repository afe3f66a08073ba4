// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ingest wires the receiver, the bounded work queue, and the
// worker pool together: the non-blocking front half of the ingestion
// pipeline.
package ingest

import (
	"time"

	"github.com/cise-syslog/ingestd/internal/model"
)

// Queue is a bounded, multi-producer/multi-consumer channel of raw
// datagrams. A buffered channel already gives the semantics the receiver
// needs: len(ch) is the current depth, a full channel makes a
// non-blocking send fail, and multiple goroutines may send or receive
// without extra locking.
type Queue struct {
	ch chan model.RawDatagram
}

// NewQueue builds a Queue bounded at capacity (spec default 100000).
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 100_000
	}
	return &Queue{ch: make(chan model.RawDatagram, capacity)}
}

// TryPush attempts a non-blocking enqueue. It reports false if the queue is
// at capacity; the receiver must never block on this call.
func (q *Queue) TryPush(d model.RawDatagram) bool {
	select {
	case q.ch <- d:
		return true
	default:
		return false
	}
}

// Pop waits up to timeout for an item, returning ok=false on timeout so the
// worker can re-check its shutdown flag and flush deadline.
func (q *Queue) Pop(timeout time.Duration) (d model.RawDatagram, ok bool) {
	select {
	case d = <-q.ch:
		return d, true
	case <-time.After(timeout):
		return model.RawDatagram{}, false
	}
}

// Len reports the current queue depth.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Cap reports the configured capacity.
func (q *Queue) Cap() int {
	return cap(q.ch)
}
