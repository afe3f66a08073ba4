// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sink

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cise-syslog/ingestd/internal/dbpool"
	"github.com/cise-syslog/ingestd/internal/model"
)

func newTestPool(t *testing.T) *dbpool.Pool {
	t.Helper()
	pool, err := dbpool.Open(dbpool.Config{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	_, err = pool.DB().Exec(`CREATE TABLE fta (
		timestamp text NOT NULL,
		ipaddress text,
		username text,
		nasipaddress text,
		remoteaddress text,
		failurereason text,
		networkdevicename text,
		requestlatency int
	)`)
	require.NoError(t, err)
	return pool
}

func TestAccumulatorFlushesOnSizeTrigger(t *testing.T) {
	pool := newTestPool(t)

	var observed []int
	observe := func(table model.Family, inserted, dropped int, err error) {
		observed = append(observed, inserted)
	}

	acc := NewAccumulator(model.FTA, pool, 2, time.Hour, observe)

	row := []any{"2026-07-31 10:00:00.000 +00:00", "1.2.3.4", "alice", "10.0.0.5", "10.0.0.9", "bad", "ASA", 12}
	require.NoError(t, acc.Enqueue(context.Background(), row))
	require.Equal(t, 1, acc.Depth())

	require.NoError(t, acc.Enqueue(context.Background(), row))
	require.Equal(t, 0, acc.Depth(), "second row should have triggered an immediate flush")
	require.Equal(t, []int{2}, observed)

	var count int
	require.NoError(t, pool.DB().Get(&count, "SELECT COUNT(*) FROM fta"))
	require.Equal(t, 2, count)
}

func TestAccumulatorRejectsInvalidRowWithoutBuffering(t *testing.T) {
	pool := newTestPool(t)
	acc := NewAccumulator(model.FTA, pool, 200, time.Hour, nil)

	err := acc.Enqueue(context.Background(), []any{"only one"})
	require.Error(t, err)
	require.Equal(t, 0, acc.Depth())
	require.Equal(t, int64(1), acc.Rejected())
}

func TestAccumulatorFlushIsNoopWhenEmpty(t *testing.T) {
	pool := newTestPool(t)
	acc := NewAccumulator(model.FTA, pool, 200, time.Hour, nil)

	require.NoError(t, acc.Flush(context.Background()))
}

func TestAccumulatorAgeTriggerFlushesAfterWait(t *testing.T) {
	pool := newTestPool(t)

	done := make(chan struct{}, 1)
	observe := func(table model.Family, inserted, dropped int, err error) {
		done <- struct{}{}
	}

	acc := NewAccumulator(model.FTA, pool, 200, 20*time.Millisecond, observe)
	row := []any{"2026-07-31 10:00:00.000 +00:00", "1.2.3.4", "alice", "10.0.0.5", "10.0.0.9", "bad", "ASA", 12}
	require.NoError(t, acc.Enqueue(context.Background(), row))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("age trigger never fired")
	}
	require.Equal(t, 0, acc.Depth())
}
