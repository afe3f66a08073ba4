// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package counters

import "sync"

const (
	fieldReceived = 0
	fieldUnhandled = 1
)

// sourceIPTable is a small mutex-guarded map; the device set is fixed and
// tiny (a handful of allow-listed network devices), so a plain map with a
// lock outperforms anything fancier here.
type sourceIPTable struct {
	mu     sync.Mutex
	counts map[string][2]int64
}

func newSourceIPTable() sourceIPTable {
	return sourceIPTable{counts: make(map[string][2]int64)}
}

func (t *sourceIPTable) add(ip string, field int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c := t.counts[ip]
	c[field]++
	t.counts[ip] = c
}

func (t *sourceIPTable) snapshot() map[string][2]int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string][2]int64, len(t.counts))
	for ip, c := range t.counts {
		out[ip] = c
	}
	return out
}
