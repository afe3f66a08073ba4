// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ciseingestd is the UDP syslog ingestion daemon: it receives
// Cisco ISE authentication/accounting messages, reassembles fragments,
// classifies and extracts fields, and batches the result into the
// configured database.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/gops/agent"

	"github.com/cise-syslog/ingestd/internal/classifier"
	"github.com/cise-syslog/ingestd/internal/config"
	"github.com/cise-syslog/ingestd/internal/counters"
	"github.com/cise-syslog/ingestd/internal/dbpool"
	"github.com/cise-syslog/ingestd/internal/ingest"
	"github.com/cise-syslog/ingestd/internal/model"
	"github.com/cise-syslog/ingestd/internal/notify"
	"github.com/cise-syslog/ingestd/internal/runtimeEnv"
	"github.com/cise-syslog/ingestd/internal/sink"
	"github.com/cise-syslog/ingestd/internal/supervisor"
	log "github.com/cise-syslog/ingestd/pkg/log"
)

func main() {
	var flagConfigFile string
	var flagGops bool
	var flagLogLevel string
	flag.StringVar(&flagConfigFile, "config", "./config.json", "Overwrite the default options by those specified in `config.json`")
	flag.BoolVar(&flagGops, "gops", false, "Listen via github.com/google/gops/agent (for debugging)")
	flag.StringVar(&flagLogLevel, "loglevel", "info", "One of debug, info, notice, warn, err, crit")
	flag.Parse()

	log.SetLogLevel(flagLogLevel)

	if flagGops {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Fatalf("gops/agent.Listen failed: %s", err.Error())
		}
	}

	if err := runtimeEnv.LoadEnv("./.env"); err != nil && !os.IsNotExist(err) {
		log.Fatalf("parsing './.env' file failed: %s", err.Error())
	}

	config.Init(flagConfigFile)
	cfg := config.Keys

	pool, err := dbpool.Open(dbpool.Config{
		Driver:  cfg.DBDriver,
		DSN:     cfg.ResolveDSN(),
		MinConn: cfg.MinConn,
		MaxConn: cfg.MaxConn,
	})
	if err != nil {
		log.Fatalf("connecting to database: %s", err.Error())
	}

	notifier := notify.Connect(notify.Config{Address: cfg.Nats.Address})

	sinks := sink.NewManager(pool, cfg.MaxBatchSize, cfg.MaxWaitDuration(), func(table model.Family, inserted, dropped int, cause error) {
		if dropped > 0 {
			notifier.PublishBatchDropped(string(table), dropped, cause)
		}
	})

	var rules []classifier.RuleDef
	if cfg.ClassifierRulesFile != "" {
		rules, err = classifier.LoadRules(cfg.ClassifierRulesFile)
		if err != nil {
			log.Fatalf("loading classifier rules: %s", err.Error())
		}
	}
	cls, err := classifier.New(rules, nil)
	if err != nil {
		log.Fatalf("compiling classifier rules: %s", err.Error())
	}

	allow := config.NewAllowList(cfg.SourceAllowList)
	cnt := counters.New()

	pipeline, err := ingest.New(ingest.Config{
		ListenAddr:     cfg.ListenAddr,
		MaxQueueSize:   cfg.MaxQueueSize,
		MinWorkers:     cfg.MinWorkers,
		MaxWorkers:     cfg.MaxWorkers,
		MessageTimeout: cfg.MessageTimeoutDuration(),
		FlushInterval:  cfg.FlushIntervalDuration(),
		DrainTimeout:   cfg.DrainTimeoutDuration(),
	}, cls, sinks, cnt, notifier, allow)
	if err != nil {
		log.Fatalf("building ingestion pipeline: %s", err.Error())
	}

	// The listening socket is already bound by ingest.New above, so a
	// privileged port (514) can still be requested by an operator running
	// as root and handing off to an unprivileged user/group afterward.
	if err := runtimeEnv.DropPrivileges(cfg.User, cfg.Group); err != nil {
		log.Fatalf("dropping privileges: %s", err.Error())
	}

	sup, err := supervisor.New(supervisor.Config{
		SampleInterval: cfg.SampleIntervalDuration(),
		CounterFile:    cfg.Monitoring.CounterFile,
		PerIPFile:      cfg.Monitoring.PerIPFile,
	}, pipeline, sinks, cnt)
	if err != nil {
		log.Fatalf("building supervisor: %s", err.Error())
	}

	pipeline.Start()
	if err := sup.Start(); err != nil {
		log.Fatalf("starting supervisor: %s", err.Error())
	}

	log.Infof("ciseingestd: listening on %s", cfg.ListenAddr)
	runtimeEnv.SystemdNotifiy(true, "running")

	var wg sync.WaitGroup
	wg.Add(1)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer wg.Done()
		<-sigs
		runtimeEnv.SystemdNotifiy(false, "shutting down")

		sup.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.DrainTimeoutDuration()+5*time.Second)
		defer cancel()
		pipeline.Shutdown(ctx)

		sinks.FlushAll(ctx)
		notifier.Close()

		if err := pool.Close(); err != nil {
			log.Warnf("closing database pool: %s", err.Error())
		}
	}()

	wg.Wait()
	log.Print("Graceful shutdown completed!")
}
