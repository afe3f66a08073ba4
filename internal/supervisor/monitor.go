// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package supervisor

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/cise-syslog/ingestd/internal/counters"
)

var counterHeader = []string{
	"timestamp",
	"received_total", "handled_total", "ready_for_insertion_total", "rejected_total",
	"received_delta", "handled_delta", "ready_for_insertion_delta", "rejected_delta",
	"lost_before_handling", "lost_during_handling",
}

var perIPHeader = []string{"timestamp", "source_ip", "received", "unhandled"}

// monitor appends rows to the two append-only CSV files the supervisor
// samples into, writing a header the first time each file is created.
type monitor struct {
	counterFile string
	perIPFile   string
}

func newMonitor(counterFile, perIPFile string) *monitor {
	return &monitor{counterFile: counterFile, perIPFile: perIPFile}
}

func (m *monitor) writeCounterRow(cur counters.Snapshot, d counters.Delta) error {
	row := []string{
		time.Now().UTC().Format(time.RFC3339),
		strconv.FormatInt(cur.Received, 10),
		strconv.FormatInt(cur.Handled, 10),
		strconv.FormatInt(cur.ReadyForInsertion, 10),
		strconv.FormatInt(cur.Rejected, 10),
		strconv.FormatInt(d.Received, 10),
		strconv.FormatInt(d.Handled, 10),
		strconv.FormatInt(d.ReadyForInsertion, 10),
		strconv.FormatInt(d.Rejected, 10),
		strconv.FormatInt(d.LostBeforeHandling, 10),
		strconv.FormatInt(d.LostDuringHandling, 10),
	}
	return appendCSVRow(m.counterFile, counterHeader, row)
}

func (m *monitor) writePerIPRow(breakdown map[string][2]int64) error {
	ts := time.Now().UTC().Format(time.RFC3339)

	ips := make([]string, 0, len(breakdown))
	for ip := range breakdown {
		ips = append(ips, ip)
	}
	sort.Strings(ips)

	f, err := openForAppend(m.perIPFile, perIPHeader)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, ip := range ips {
		c := breakdown[ip]
		row := []string{ts, ip, strconv.FormatInt(c[0], 10), strconv.FormatInt(c[1], 10)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func appendCSVRow(path string, header, row []string) error {
	f, err := openForAppend(path, header)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// openForAppend opens path for appending, creating it and writing header
// first if it does not already exist.
func openForAppend(path string, header []string) (*os.File, error) {
	_, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("supervisor: opening %s: %w", path, err)
	}

	if needsHeader {
		w := csv.NewWriter(f)
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}
