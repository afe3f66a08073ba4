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
	"github.com/cise-syslog/ingestd/internal/notify"
	"github.com/cise-syslog/ingestd/internal/sink"
	log "github.com/cise-syslog/ingestd/pkg/log"
)

// Config bounds the pipeline's queue and worker pool.
type Config struct {
	ListenAddr     string
	MaxQueueSize   int
	MinWorkers     int
	MaxWorkers     int
	MessageTimeout time.Duration
	FlushInterval  time.Duration
	DrainTimeout   time.Duration
}

func (c Config) withDefaults() Config {
	if c.ListenAddr == "" {
		c.ListenAddr = "0.0.0.0:514"
	}
	if c.MaxQueueSize <= 0 {
		c.MaxQueueSize = 100_000
	}
	if c.MinWorkers <= 0 {
		c.MinWorkers = 1
	}
	if c.MaxWorkers < c.MinWorkers {
		c.MaxWorkers = c.MinWorkers
	}
	if c.MessageTimeout <= 0 {
		c.MessageTimeout = 30 * time.Second
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = 15 * time.Second
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = 5 * time.Second
	}
	return c
}

// Pipeline wires the receiver, bounded queue, and worker pool together.
type Pipeline struct {
	cfg      Config
	Queue    *Queue
	Receiver *Receiver
	Pool     *Pool
}

// New builds a Pipeline. It binds the listening socket (NewReceiver) but
// does not start reading from it or spawning workers until Start.
func New(cfg Config, c *classifier.Classifier, sinks *sink.Manager, cnt *counters.Counters, n *notify.Forwarder, allow AllowList) (*Pipeline, error) {
	cfg = cfg.withDefaults()

	queue := NewQueue(cfg.MaxQueueSize)
	receiver, err := NewReceiver(cfg.ListenAddr, queue, cnt, allow)
	if err != nil {
		return nil, err
	}

	pool := NewPool(func(id int) *Worker {
		return NewWorker(id, queue, c, sinks, cnt, n, cfg.MessageTimeout, cfg.FlushInterval)
	})

	return &Pipeline{cfg: cfg, Queue: queue, Receiver: receiver, Pool: pool}, nil
}

// Start spawns MaxWorkers workers and begins the receiver's read loop in a
// new goroutine.
func (p *Pipeline) Start() {
	p.Pool.Spawn(p.cfg.MaxWorkers)
	go func() {
		if err := p.Receiver.Run(); err != nil {
			log.Errorf("pipeline: receiver exited: %v", err)
		}
	}()
}

// EnsureWorkers tops the pool back up to MinWorkers if any workers have
// exited; the supervisor calls this on its respawn cadence.
func (p *Pipeline) EnsureWorkers() {
	p.Pool.EnsureMinimum(p.cfg.MinWorkers)
}

// Shutdown stops the receiver, drains the queue with a bounded timeout,
// and waits for every worker to exit.
func (p *Pipeline) Shutdown(ctx context.Context) {
	if err := p.Receiver.Close(); err != nil {
		log.Warnf("pipeline: closing receiver socket: %v", err)
	}

	drainCtx, cancel := context.WithTimeout(ctx, p.cfg.DrainTimeout)
	defer cancel()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
drain:
	for p.Queue.Len() > 0 {
		select {
		case <-drainCtx.Done():
			break drain
		case <-ticker.C:
		}
	}
	if n := p.Queue.Len(); n > 0 {
		log.Warnf("pipeline: shutdown drain timeout with %d items still queued", n)
	}

	p.Pool.Shutdown()
}
