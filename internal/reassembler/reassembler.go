// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reassembler implements the fragment reassembler: it buffers
// fragments of a multi-part Cisco ISE message by uid and emits a
// WholeMessage once every expected piece has arrived, or best-effort on
// timeout.
package reassembler

import (
	"sort"
	"sync"
	"time"

	"github.com/cise-syslog/ingestd/internal/extractor"
	"github.com/cise-syslog/ingestd/internal/model"
)

// part is one received fragment slot; duplicates at the same index are
// tolerated and kept in arrival order rather than deduplicated.
type part struct {
	index int
	text  string
}

type buffer struct {
	total     int
	received  []part
	sourceIP  string
	firstSeen time.Time
	lastSeen  time.Time
}

// Reassembler buffers in-flight fragments keyed by uid. It is safe for
// concurrent use by multiple workers.
type Reassembler struct {
	mu      sync.Mutex
	buffers map[string]*buffer
	timeout time.Duration
	now     func() time.Time
}

// New builds a Reassembler evicting fragments that have gone unfed for
// longer than timeout (spec default 30s). now defaults to time.Now; tests
// inject a fake clock.
func New(timeout time.Duration, now func() time.Time) *Reassembler {
	if now == nil {
		now = time.Now
	}
	return &Reassembler{
		buffers: make(map[string]*buffer),
		timeout: timeout,
		now:     now,
	}
}

// Feed appends one fragment to its buffer and reports whether that
// completed the message. Swept (timed-out) buffers belonging to other uids
// are returned alongside, each as a best-effort partial WholeMessage.
//
// Feed never blocks on other uids: the fragment that completes its buffer
// is returned even if the sweep below finds unrelated timed-out buffers in
// the same call.
func (r *Reassembler) Feed(f model.Fragment) (complete *model.WholeMessage, swept []model.WholeMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	b, ok := r.buffers[f.UID]
	if !ok {
		b = &buffer{total: f.Total, sourceIP: f.SourceIP, firstSeen: now}
		r.buffers[f.UID] = b
	}
	b.received = append(b.received, part{index: f.Index, text: f.Text})
	b.lastSeen = now

	if len(b.received) >= b.total {
		complete = &model.WholeMessage{
			SourceIP: b.sourceIP,
			Text:     concatSorted(b.received),
			Arrived:  b.firstSeen,
		}
		delete(r.buffers, f.UID)
	}

	for uid, other := range r.buffers {
		if uid == f.UID {
			continue
		}
		if now.Sub(other.lastSeen) > r.timeout {
			swept = append(swept, model.WholeMessage{
				SourceIP: other.sourceIP,
				Text:     concatSorted(other.received),
				Arrived:  other.firstSeen,
			})
			delete(r.buffers, uid)
		}
	}

	return complete, swept
}

// Pending reports how many uids currently have an in-flight buffer, for the
// supervisor's depth sampling.
func (r *Reassembler) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buffers)
}

func concatSorted(parts []part) string {
	sorted := make([]part, len(parts))
	copy(sorted, parts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].index < sorted[j].index })

	var out string
	for _, p := range sorted {
		out += p.text
	}
	return out
}

// IsFragment reports whether text carries a chunk header and, if so, the
// Fragment it describes.
func IsFragment(raw model.RawDatagram) (model.Fragment, bool) {
	uid, total, index, ok := extractor.ParseChunkHeader(raw.Text)
	if !ok {
		return model.Fragment{}, false
	}
	return model.Fragment{
		UID:      uid,
		Total:    total,
		Index:    index,
		Text:     raw.Text,
		SourceIP: raw.SourceIP,
		Arrived:  raw.Arrived,
	}, true
}
