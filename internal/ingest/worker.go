// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ingest

import (
	"context"
	"time"

	"github.com/cise-syslog/ingestd/internal/classifier"
	"github.com/cise-syslog/ingestd/internal/counters"
	"github.com/cise-syslog/ingestd/internal/model"
	"github.com/cise-syslog/ingestd/internal/notify"
	"github.com/cise-syslog/ingestd/internal/reassembler"
	"github.com/cise-syslog/ingestd/internal/sink"
	log "github.com/cise-syslog/ingestd/pkg/log"
)

// Worker drains the queue and drives one item at a time through
// reassembly, classification, and the sink. Its fragment buffer is
// per-worker and never shared with any other worker.
type Worker struct {
	id            int
	queue         *Queue
	reassembler   *reassembler.Reassembler
	classifier    *classifier.Classifier
	sinks         *sink.Manager
	counters      *counters.Counters
	notifier      *notify.Forwarder
	flushInterval time.Duration
}

// NewWorker builds one worker. Each worker gets its own Reassembler so
// fragment state is never shared across goroutines.
func NewWorker(id int, queue *Queue, c *classifier.Classifier, sinks *sink.Manager, cnt *counters.Counters, n *notify.Forwarder, messageTimeout, flushInterval time.Duration) *Worker {
	return &Worker{
		id:            id,
		queue:         queue,
		reassembler:   reassembler.New(messageTimeout, nil),
		classifier:    c,
		sinks:         sinks,
		counters:      cnt,
		notifier:      n,
		flushInterval: flushInterval,
	}
}

// Run drains the queue with a 1-second timed wait until shutdown is
// closed, observing the flush deadline on every turn whether or not an
// item was dequeued.
func (w *Worker) Run(shutdown <-chan struct{}) {
	lastFlush := time.Now()
	for {
		select {
		case <-shutdown:
			return
		default:
		}

		d, ok := w.queue.Pop(time.Second)
		if ok {
			w.counters.Handled.Add(1)
			w.processSafely(d)
		}

		if time.Since(lastFlush) >= w.flushInterval {
			w.sinks.FlushAll(context.Background())
			lastFlush = time.Now()
		}
	}
}

// processSafely recovers from a panic in one item's processing so a single
// malformed message can never take the worker down; the item is logged and
// dropped, and the worker moves on to the next one.
func (w *Worker) processSafely(d model.RawDatagram) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("worker %d: recovered from panic processing datagram from %s: %v", w.id, d.SourceIP, r)
		}
	}()
	w.process(d)
}

func (w *Worker) process(d model.RawDatagram) {
	if frag, ok := reassembler.IsFragment(d); ok {
		complete, swept := w.reassembler.Feed(frag)
		for _, wm := range swept {
			w.route(wm)
		}
		if complete != nil {
			w.route(*complete)
		}
		return
	}
	w.route(model.WholeMessage{SourceIP: d.SourceIP, Text: d.Text, Arrived: d.Arrived})
}

func (w *Worker) route(msg model.WholeMessage) {
	res := w.classifier.Classify(msg)
	switch res.Verdict {
	case classifier.Routed:
		if err := w.sinks.Enqueue(context.Background(), res.Row); err != nil {
			log.Warnf("worker %d: row rejected for table %s: %v", w.id, res.Row.Table, err)
			w.counters.Rejected.Add(1)
			return
		}
		w.counters.ReadyForInsertion.Add(1)
	case classifier.Ignored:
		// silent drop: a rejected-accounting notice carries no row to persist.
	case classifier.Unhandled:
		w.counters.RecordUnhandled(msg.SourceIP)
		w.notifier.PublishUnhandled(msg.SourceIP, res.Token)
	}
}
