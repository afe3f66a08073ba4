// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package model holds the data shapes that flow through the ingestion
// pipeline: the raw datagram off the wire, the fragment/whole-message
// stages of reassembly, and the classified row handed to a sink.
package model

import "time"

// RawDatagram is one UDP read, before any fragment or classification logic
// has looked at it. Its lifetime is a single queue traversal.
type RawDatagram struct {
	SourceIP string
	Text     string
	Arrived  time.Time
}

// Fragment is a RawDatagram whose text matched the chunk-header pattern
// (CISE_<word> <uid> <total> <index>).
type Fragment struct {
	UID      string
	Total    int
	Index    int
	Text     string
	SourceIP string
	Arrived  time.Time
}

// WholeMessage is a complete Cisco ISE message, either a datagram that was
// never fragmented or the concatenation the reassembler produced.
type WholeMessage struct {
	SourceIP string
	Text     string
	Arrived  time.Time
}

// Family names the target table (and implicit schema) a WholeMessage was
// routed to.
type Family string

const (
	FTA Family = "fta"
	FWA Family = "fwa"
	FLA Family = "fla"
	PWA Family = "pwa"
	PLA Family = "pla"
	TCA Family = "tca"
)

// ClassifiedRow is the row-shaped output of the classifier, ready for a
// sink's Accumulator. Values are ordered to match the target table's
// column list (see TableSchemas in schemas.go).
type ClassifiedRow struct {
	Table  Family
	Values []any
}

// ColumnType constrains what an Accumulator's validator accepts for a
// given column.
type ColumnType int

const (
	ColText ColumnType = iota
	ColInet
	ColInt
)

// Column describes one column of a target table.
type Column struct {
	Name    string
	Type    ColumnType
	NotNull bool
}
