// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dbpool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "postgres", DSN: ":memory:"})
	assert.Error(t, err)
}

func TestAcquireReleaseRoundTrip(t *testing.T) {
	pool, err := Open(Config{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	conn, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.NoError(t, pool.Release(conn))
}

func TestAcquireAfterCloseReturnsErrPoolClosed(t *testing.T) {
	pool, err := Open(Config{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, pool.Close())

	_, err = pool.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrPoolClosed)
}
