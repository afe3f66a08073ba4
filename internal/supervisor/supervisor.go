// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package supervisor runs the periodic background tasks the ingestion
// pipeline can't drive off its own request path: monitoring samples,
// queue-pressure flushes, and worker respawn.
package supervisor

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/cise-syslog/ingestd/internal/counters"
	"github.com/cise-syslog/ingestd/internal/ingest"
	"github.com/cise-syslog/ingestd/internal/sink"
	log "github.com/cise-syslog/ingestd/pkg/log"
)

// Config governs the supervisor's cadence and where it writes monitoring
// output. A zero-value Config is filled in with spec defaults by New.
type Config struct {
	SampleInterval     time.Duration
	CounterFile        string
	PerIPFile          string
	QueueHighWatermark float64 // fraction of capacity that triggers a forced flush
}

func (c Config) withDefaults() Config {
	if c.SampleInterval <= 0 {
		c.SampleInterval = 10 * time.Second
	}
	if c.CounterFile == "" {
		c.CounterFile = "./var/counters.csv"
	}
	if c.PerIPFile == "" {
		c.PerIPFile = "./var/counters_by_ip.csv"
	}
	if c.QueueHighWatermark <= 0 {
		c.QueueHighWatermark = 0.5
	}
	return c
}

// Supervisor owns the gocron scheduler driving the pipeline's periodic
// tasks: one scheduler, a set of registered jobs, Start/Shutdown
// lifecycle.
type Supervisor struct {
	cfg      Config
	sched    gocron.Scheduler
	pipeline *ingest.Pipeline
	sinks    *sink.Manager
	counters *counters.Counters
	monitor  *monitor

	prev counters.Snapshot
}

// New builds an unstarted Supervisor.
func New(cfg Config, pipeline *ingest.Pipeline, sinks *sink.Manager, cnt *counters.Counters) (*Supervisor, error) {
	cfg = cfg.withDefaults()

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Supervisor{
		cfg:      cfg,
		sched:    sched,
		pipeline: pipeline,
		sinks:    sinks,
		counters: cnt,
		monitor:  newMonitor(cfg.CounterFile, cfg.PerIPFile),
		prev:     cnt.Snapshot(),
	}, nil
}

// Start registers the sampling, flush-pressure, and respawn jobs and
// starts the scheduler. Each job runs at cfg.SampleInterval.
func (s *Supervisor) Start() error {
	if _, err := s.sched.NewJob(
		gocron.DurationJob(s.cfg.SampleInterval),
		gocron.NewTask(s.sample),
	); err != nil {
		return err
	}

	if _, err := s.sched.NewJob(
		gocron.DurationJob(s.cfg.SampleInterval),
		gocron.NewTask(s.checkQueuePressure),
	); err != nil {
		return err
	}

	if _, err := s.sched.NewJob(
		gocron.DurationJob(s.cfg.SampleInterval),
		gocron.NewTask(s.pipeline.EnsureWorkers),
	); err != nil {
		return err
	}

	s.sched.Start()
	log.Infof("supervisor: started with %s sampling interval", s.cfg.SampleInterval)
	return nil
}

// sample writes the counter-delta CSV row and the per-source-IP breakdown.
// Queue depth and per-accumulator depths are only logged at Debug level;
// they are not written to any monitoring file.
func (s *Supervisor) sample() {
	cur := s.counters.Snapshot()
	delta := s.prev.Delta(cur)
	s.prev = cur

	if err := s.monitor.writeCounterRow(cur, delta); err != nil {
		log.Warnf("supervisor: writing counter file: %v", err)
	}
	if err := s.monitor.writePerIPRow(s.counters.PerIPBreakdown()); err != nil {
		log.Warnf("supervisor: writing per-ip counter file: %v", err)
	}

	log.Debugf("supervisor: queue=%d/%d depths=%v rejected=%v",
		s.pipeline.Queue.Len(), s.pipeline.Queue.Cap(), s.sinks.Depths(), s.sinks.Rejected())
}

// checkQueuePressure forces a global flush when the queue is over the
// configured high watermark.
func (s *Supervisor) checkQueuePressure() {
	queueLen, capacity := s.pipeline.Queue.Len(), s.pipeline.Queue.Cap()
	if capacity == 0 || float64(queueLen)/float64(capacity) <= s.cfg.QueueHighWatermark {
		return
	}

	log.Warnf("supervisor: queue depth %d/%d exceeds watermark, forcing flush", queueLen, capacity)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.sinks.FlushAll(ctx)
}

// Shutdown stops the scheduler. It does not touch the pipeline or sinks;
// the caller sequences receiver-stop, drain, flush, and pool cleanup.
func (s *Supervisor) Shutdown() {
	if err := s.sched.Shutdown(); err != nil {
		log.Warnf("supervisor: scheduler shutdown: %v", err)
	}
}
