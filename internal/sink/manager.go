// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/cise-syslog/ingestd/internal/dbpool"
	"github.com/cise-syslog/ingestd/internal/model"
)

// Manager owns one Accumulator per table and routes a ClassifiedRow to the
// right one. It is the supervisor's handle for FlushAll and depth sampling.
type Manager struct {
	accumulators map[model.Family]*Accumulator
}

// NewManager builds an Accumulator for every family in model.TableSchemas.
func NewManager(pool *dbpool.Pool, maxBatch int, maxWait time.Duration, observe FlushObserver) *Manager {
	m := &Manager{accumulators: make(map[model.Family]*Accumulator, len(model.TableSchemas))}
	for table := range model.TableSchemas {
		m.accumulators[table] = NewAccumulator(table, pool, maxBatch, maxWait, observe)
	}
	return m
}

// Enqueue validates and appends row to its table's accumulator.
func (m *Manager) Enqueue(ctx context.Context, row model.ClassifiedRow) error {
	acc, ok := m.accumulators[row.Table]
	if !ok {
		return fmt.Errorf("sink: no accumulator registered for table %q", row.Table)
	}
	return acc.Enqueue(ctx, row.Values)
}

// FlushAll flushes every accumulator; used on the supervisor's queue-
// pressure trigger and on shutdown.
func (m *Manager) FlushAll(ctx context.Context) {
	for _, acc := range m.accumulators {
		acc.Flush(ctx)
	}
}

// Depths reports the current buffered row count per table, for the
// supervisor's monitoring sample.
func (m *Manager) Depths() map[model.Family]int {
	out := make(map[model.Family]int, len(m.accumulators))
	for table, acc := range m.accumulators {
		out[table] = acc.Depth()
	}
	return out
}

// Rejected reports the running rejected-row count per table.
func (m *Manager) Rejected() map[model.Family]int64 {
	out := make(map[model.Family]int64, len(m.accumulators))
	for table, acc := range m.accumulators {
		out[table] = acc.Rejected()
	}
	return out
}
