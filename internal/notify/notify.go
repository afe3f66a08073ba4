// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package notify provides a publish-only NATS forwarder for operational
// events (unhandled messages, published by the workers; dropped batches,
// published from the sinks' flush observer) fanned out for external
// alerting. It is entirely optional: absent configuration
// it becomes a no-op that still satisfies the same interface.
package notify

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	log "github.com/cise-syslog/ingestd/pkg/log"
)

const (
	// SubjectUnhandled is published once per WholeMessage the classifier
	// could not route.
	SubjectUnhandled = "cise.unhandled"
	// SubjectBatchDropped is published once per accumulator flush that
	// failed and dropped its batch.
	SubjectBatchDropped = "cise.batch.dropped"
)

// Config configures the optional forwarder. An empty Address disables it.
type Config struct {
	Address string
}

// Forwarder publishes small JSON events to NATS. A zero-value Forwarder
// (or one built from an empty Config) is a safe no-op.
type Forwarder struct {
	conn *nats.Conn
}

// Connect dials NATS if cfg.Address is set. On any connection error it logs
// a warning and returns a no-op Forwarder rather than failing startup —
// notification is a supplemental feature, never a precondition for
// ingestion.
func Connect(cfg Config) *Forwarder {
	if cfg.Address == "" {
		return &Forwarder{}
	}

	conn, err := nats.Connect(cfg.Address, nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
		if err != nil {
			log.Warnf("notify: nats error: %v", err)
		}
	}))
	if err != nil {
		log.Warnf("notify: connect to %s failed, forwarding disabled: %v", cfg.Address, err)
		return &Forwarder{}
	}

	log.Infof("notify: connected to %s", cfg.Address)
	return &Forwarder{conn: conn}
}

// PublishUnhandled forwards one unhandled-message event. Errors are logged
// and swallowed — forwarding must never block or fail ingestion.
func (f *Forwarder) PublishUnhandled(sourceIP, token string) {
	f.publish(SubjectUnhandled, map[string]string{"source_ip": sourceIP, "token": token})
}

// PublishBatchDropped forwards one dropped-batch event.
func (f *Forwarder) PublishBatchDropped(table string, rowCount int, cause error) {
	causeStr := ""
	if cause != nil {
		causeStr = cause.Error()
	}
	f.publish(SubjectBatchDropped, map[string]any{"table": table, "rows": rowCount, "cause": causeStr})
}

func (f *Forwarder) publish(subject string, payload any) {
	if f.conn == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Warnf("notify: marshal event for %s: %v", subject, err)
		return
	}
	if err := f.conn.Publish(subject, data); err != nil {
		log.Warnf("notify: publish to %s: %v", subject, err)
	}
}

// Close releases the underlying connection, if any.
func (f *Forwarder) Close() {
	if f.conn != nil {
		f.conn.Close()
	}
}
