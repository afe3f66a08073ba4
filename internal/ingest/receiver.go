// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ingest

import (
	"net"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cise-syslog/ingestd/internal/counters"
	"github.com/cise-syslog/ingestd/internal/model"
	log "github.com/cise-syslog/ingestd/pkg/log"
)

const maxDatagramSize = 8192

// Receiver owns the UDP socket exclusively; no other component reads from
// it. It never blocks past a single read/enqueue cycle.
type Receiver struct {
	conn     *net.UDPConn
	queue    *Queue
	counters *counters.Counters
	allow    AllowList
}

// AllowList reports whether a source IP may be processed. Messages from
// outside it are still counted as received but never enqueued — the
// classifier never sees them.
type AllowList interface {
	Allowed(ip string) bool
}

// NewReceiver binds addr (default "0.0.0.0:514") and returns a Receiver
// ready for Run. Binding a privileged port is expected to happen before
// internal/runtimeEnv.DropPrivileges runs.
func NewReceiver(addr string, queue *Queue, c *counters.Counters, allow AllowList) (*Receiver, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, err
	}
	return &Receiver{conn: conn, queue: queue, counters: c, allow: allow}, nil
}

// Run reads datagrams until the connection is closed (by Close, on
// shutdown). A read error after Close is expected and not logged as a
// failure; any other read error is fatal to the receiver goroutine.
func (r *Receiver) Run() error {
	buf := make([]byte, maxDatagramSize)
	for {
		n, addr, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			if strings.Contains(err.Error(), "use of closed network connection") {
				return nil
			}
			log.Errorf("receiver: socket error, shutting down: %v", err)
			return err
		}

		sourceIP := addr.IP.String()
		text := toValidUTF8(buf[:n])
		r.counters.RecordReceived(sourceIP)

		if r.allow != nil && !r.allow.Allowed(sourceIP) {
			r.counters.RecordUnhandled(sourceIP)
			continue
		}

		datagram := model.RawDatagram{SourceIP: sourceIP, Text: text, Arrived: time.Now()}
		if !r.queue.TryPush(datagram) {
			log.Warnf("receiver: queue full, dropping datagram from %s", sourceIP)
		}
	}
}

// Close shuts down the socket, unblocking Run.
func (r *Receiver) Close() error {
	return r.conn.Close()
}

func toValidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
