// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sink implements the batched sink: one Accumulator per
// target table, each validating rows on append and flushing them as a
// single multi-row INSERT when a size or age trigger fires.
package sink

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cise-syslog/ingestd/internal/dbpool"
	"github.com/cise-syslog/ingestd/internal/model"
	log "github.com/cise-syslog/ingestd/pkg/log"
)

// FlushObserver is notified after every flush attempt, successful or not.
// dropped is the row count discarded when err != nil. Implementations must
// not block; the supervisor's NATS forwarder (internal/notify) is the
// expected consumer.
type FlushObserver func(table model.Family, inserted int, dropped int, err error)

// Accumulator buffers validated rows for one table and flushes them in a
// single batch, triggered by size, by an age timer, or externally by the
// supervisor.
type Accumulator struct {
	table    model.Family
	columns  []model.Column
	pool     *dbpool.Pool
	maxBatch int
	maxWait  time.Duration
	observe  FlushObserver

	mu       sync.Mutex
	rows     [][]any
	timer    *time.Timer
	flushing bool

	rejected atomic.Int64
}

// NewAccumulator builds an Accumulator for table, sized by the configured
// defaults (maxBatch=200, maxWait=60s) when zero values are passed.
func NewAccumulator(table model.Family, pool *dbpool.Pool, maxBatch int, maxWait time.Duration, observe FlushObserver) *Accumulator {
	if maxBatch <= 0 {
		maxBatch = 200
	}
	if maxWait <= 0 {
		maxWait = 60 * time.Second
	}
	if observe == nil {
		observe = func(model.Family, int, int, error) {}
	}
	return &Accumulator{
		table:    table,
		columns:  model.TableSchemas[table],
		pool:     pool,
		maxBatch: maxBatch,
		maxWait:  maxWait,
		observe:  observe,
	}
}

// Enqueue validates values against the table's schema and appends them.
// An invalid row is rejected (rejected_count++) and never appended. A full
// batch triggers an immediate synchronous flush before Enqueue returns;
// the first row into an empty accumulator arms the age timer.
func (a *Accumulator) Enqueue(ctx context.Context, values []any) error {
	if err := validateRow(a.columns, values); err != nil {
		a.rejected.Add(1)
		return err
	}

	a.mu.Lock()
	wasEmpty := len(a.rows) == 0
	a.rows = append(a.rows, values)
	full := len(a.rows) >= a.maxBatch
	if wasEmpty {
		a.timer = time.AfterFunc(a.maxWait, func() { a.Flush(context.Background()) })
	}
	a.mu.Unlock()

	if full {
		return a.Flush(ctx)
	}
	return nil
}

// Depth reports the number of buffered, not-yet-flushed rows.
func (a *Accumulator) Depth() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.rows)
}

// Rejected reports the running count of rows this accumulator has refused.
func (a *Accumulator) Rejected() int64 {
	return a.rejected.Load()
}

// Flush drains the buffer and issues one multi-row INSERT. A flush already
// in flight makes a concurrent call a no-op, keeping a single flush-
// per-accumulator invariant.
func (a *Accumulator) Flush(ctx context.Context) error {
	a.mu.Lock()
	if a.flushing || len(a.rows) == 0 {
		if a.timer != nil && len(a.rows) == 0 {
			a.timer.Stop()
		}
		a.mu.Unlock()
		return nil
	}
	a.flushing = true
	batch := a.rows
	a.rows = nil
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.flushing = false
		a.mu.Unlock()
	}()

	err := a.insertBatch(ctx, batch)
	if err != nil {
		log.Errorf("sink: flush %s dropped %d rows: %v", a.table, len(batch), err)
		a.observe(a.table, 0, len(batch), err)
		return err
	}
	a.observe(a.table, len(batch), 0, nil)
	return nil
}

func (a *Accumulator) insertBatch(ctx context.Context, batch [][]any) error {
	conn, err := a.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer a.pool.Release(conn)

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	colNames := make([]string, len(a.columns))
	for i, c := range a.columns {
		colNames[i] = c.Name
	}

	builder := sq.Insert(string(a.table)).Columns(colNames...)
	for _, row := range batch {
		builder = builder.Values(row...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
