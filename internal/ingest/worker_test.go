// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cise-syslog/ingestd/internal/classifier"
	"github.com/cise-syslog/ingestd/internal/counters"
	"github.com/cise-syslog/ingestd/internal/dbpool"
	"github.com/cise-syslog/ingestd/internal/model"
	"github.com/cise-syslog/ingestd/internal/notify"
	"github.com/cise-syslog/ingestd/internal/sink"
)

func TestWorkerRoutesCompleteMessageIntoSink(t *testing.T) {
	pool, err := dbpool.Open(dbpool.Config{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	_, err = pool.DB().Exec(`CREATE TABLE fta (
		timestamp text NOT NULL, ipaddress text, username text, nasipaddress text,
		remoteaddress text, failurereason text, networkdevicename text, requestlatency int
	)`)
	require.NoError(t, err)

	c, err := classifier.New(nil, func() time.Time { return time.Now() })
	require.NoError(t, err)

	sinks := sink.NewManager(pool, 200, time.Hour, nil)
	cnt := counters.New()
	notifier := notify.Connect(notify.Config{})

	q := NewQueue(10)
	w := NewWorker(0, q, c, sinks, cnt, notifier, 30*time.Second, time.Hour)

	msg := model.RawDatagram{
		SourceIP: "1.2.3.4",
		Text: "CISE_Failed_Attempts: Failed-Attempt: Authentication failed, Protocol=Tacacs, " +
			"UserName=alice, Device IP Address=10.0.0.5, Remote-Address=10.0.0.9, " +
			"FailureReason=bad-password, NetworkDeviceName=ASA-CORE, RequestLatency=12, <end",
	}

	w.process(msg)

	require.Equal(t, int64(1), cnt.ReadyForInsertion.Load())

	sinks.FlushAll(context.Background())

	var count int
	require.NoError(t, pool.DB().Get(&count, "SELECT COUNT(*) FROM fta"))
	require.Equal(t, 1, count)
}

func TestWorkerRecordsUnhandledMessage(t *testing.T) {
	pool, err := dbpool.Open(dbpool.Config{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	c, err := classifier.New(nil, func() time.Time { return time.Now() })
	require.NoError(t, err)

	sinks := sink.NewManager(pool, 200, time.Hour, nil)
	cnt := counters.New()
	notifier := notify.Connect(notify.Config{})
	q := NewQueue(10)
	w := NewWorker(0, q, c, sinks, cnt, notifier, 30*time.Second, time.Hour)

	w.process(model.RawDatagram{SourceIP: "9.9.9.9", Text: "CISE_Unknown_Thing nothing matches here"})

	breakdown := cnt.PerIPBreakdown()
	require.Equal(t, [2]int64{0, 1}, breakdown["9.9.9.9"])
}
