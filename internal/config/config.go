// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"time"

	log "github.com/cise-syslog/ingestd/pkg/log"
)

// Monitoring names the files the supervisor writes periodic samples to.
type Monitoring struct {
	CounterFile    string `json:"counter_file"`
	PerIPFile      string `json:"per_ip_file"`
	SampleInterval string `json:"sample_interval"`
}

// Nats configures the optional fan-out notifier. An empty Address leaves
// the notifier a no-op.
type Nats struct {
	Address string `json:"address"`
}

// Config is the daemon's full runtime configuration, decoded from
// config.json and validated against configSchema before use.
type Config struct {
	ListenAddr string `json:"listen_addr"`

	DBDriver string `json:"db_driver"`
	DBDSN    string `json:"db_dsn"`
	MinConn  int    `json:"min_conn"`
	MaxConn  int    `json:"max_conn"`

	MaxQueueSize  int    `json:"max_queue_size"`
	MaxBatchSize  int    `json:"max_batch_size"`
	MaxWaitTime   string `json:"max_wait_time"`
	FlushInterval string `json:"flush_interval"`

	MessageTimeout string `json:"message_timeout"`
	DrainTimeout   string `json:"drain_timeout"`

	MinWorkers int `json:"min_workers"`
	MaxWorkers int `json:"max_workers"`

	SourceAllowList []string `json:"source_allow_list"`

	Monitoring Monitoring `json:"monitoring"`
	Nats       Nats       `json:"nats"`

	User  string `json:"user"`
	Group string `json:"group"`

	ClassifierRulesFile string `json:"classifier_rules_file"`
}

// Keys holds the process-wide configuration, populated by Init. These
// defaults are overwritten field-by-field by whatever config.json
// supplies.
var Keys = Config{
	ListenAddr: "0.0.0.0:514",

	DBDriver: "sqlite3",
	DBDSN:    "./var/cise.db",
	MinConn:  1,
	MaxConn:  30,

	MaxQueueSize:  100_000,
	MaxBatchSize:  200,
	MaxWaitTime:   "60s",
	FlushInterval: "15s",

	MessageTimeout: "30s",
	DrainTimeout:   "5s",

	MinWorkers: 2,
	MaxWorkers: 8,

	Monitoring: Monitoring{
		CounterFile:    "./var/counters.csv",
		PerIPFile:      "./var/counters_by_ip.csv",
		SampleInterval: "10s",
	},
}

// Init loads flagConfigFile (if present) over the defaults in Keys,
// validating it against configSchema first. A missing file is not an
// error: the daemon runs on defaults. A present-but-invalid file is
// fatal — a daemon that silently ignores a broken config is worse than
// one that refuses to start.
func Init(flagConfigFile string) {
	raw, err := os.ReadFile(flagConfigFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatal(err)
		}
		return
	}

	Validate(configSchema, json.RawMessage(raw))

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&Keys); err != nil {
		log.Fatal(err)
	}
}

// ResolveDSN returns DBDSN, or the named environment variable's value if
// DBDSN is of the form "env:VARNAME" — lets an operator keep credentials
// out of config.json.
func (c Config) ResolveDSN() string {
	if strings.HasPrefix(c.DBDSN, "env:") {
		return os.Getenv(strings.TrimPrefix(c.DBDSN, "env:"))
	}
	return c.DBDSN
}

func mustDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Warnf("config: invalid duration %q, using %s: %v", s, fallback, err)
		return fallback
	}
	return d
}

func (c Config) MaxWaitDuration() time.Duration      { return mustDuration(c.MaxWaitTime, 60*time.Second) }
func (c Config) FlushIntervalDuration() time.Duration {
	return mustDuration(c.FlushInterval, 15*time.Second)
}
func (c Config) MessageTimeoutDuration() time.Duration {
	return mustDuration(c.MessageTimeout, 30*time.Second)
}
func (c Config) DrainTimeoutDuration() time.Duration { return mustDuration(c.DrainTimeout, 5*time.Second) }
func (c Config) SampleIntervalDuration() time.Duration {
	return mustDuration(c.Monitoring.SampleInterval, 10*time.Second)
}
