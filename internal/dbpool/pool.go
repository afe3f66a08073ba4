// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dbpool implements the connection pool: a bounded pool of
// database connections, opened once at startup and shared by every sink
// accumulator's flush.
package dbpool

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"github.com/qustavo/sqlhooks/v2"

	_ "github.com/go-sql-driver/mysql"
)

// ErrPoolClosed is returned by Acquire once Close has run; callers treat it
// as drop-and-log, the same as any other flush failure.
var ErrPoolClosed = errors.New("dbpool: pool is closed")

// Config bounds the pool's connection count.
type Config struct {
	Driver  string // "sqlite3" or "mysql"
	DSN     string
	MinConn int
	MaxConn int
}

func (c Config) withDefaults() Config {
	if c.MinConn <= 0 {
		c.MinConn = 1
	}
	if c.MaxConn <= 0 {
		c.MaxConn = 30
	}
	return c
}

// Pool wraps a *sqlx.DB, itself already a connection pool; Acquire/Release
// are modeled on top of it as checkout/return of a single *sqlx.Conn, so
// callers get bounded-pool semantics without this package reimplementing
// what database/sql already does well.
type Pool struct {
	mu     sync.Mutex
	db     *sqlx.DB
	closed bool
}

var sqliteHooksRegistered sync.Once

// Open opens the underlying *sqlx.DB and pings it before returning; the
// database is not opened lazily on first Acquire. The sync.Once below only
// guards registration of the hooked sqlite3 driver, whose name is
// process-global; each Open call builds a new Pool and *sqlx.DB.
func Open(cfg Config) (*Pool, error) {
	cfg = cfg.withDefaults()

	var db *sqlx.DB
	var err error

	switch cfg.Driver {
	case "sqlite3":
		sqliteHooksRegistered.Do(func() {
			sql.Register("sqlite3WithHooks", sqlhooks.Wrap(&sqlite3.SQLiteDriver{}, &Hooks{}))
		})
		db, err = sqlx.Open("sqlite3WithHooks", fmt.Sprintf("%s?_foreign_keys=on", cfg.DSN))
		if err != nil {
			return nil, fmt.Errorf("dbpool: open sqlite3: %w", err)
		}
		// sqlite3 does not support concurrent writers; bound to one
		// connection regardless of the configured max.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	case "mysql":
		db, err = sqlx.Open("mysql", fmt.Sprintf("%s?multiStatements=true", cfg.DSN))
		if err != nil {
			return nil, fmt.Errorf("dbpool: open mysql: %w", err)
		}
		db.SetMaxOpenConns(cfg.MaxConn)
		db.SetMaxIdleConns(cfg.MinConn)
		db.SetConnMaxLifetime(time.Hour)
	default:
		return nil, fmt.Errorf("dbpool: unsupported driver %q", cfg.Driver)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("dbpool: ping: %w", err)
	}

	return &Pool{db: db}, nil
}

// DB exposes the underlying handle for callers (the sink's squirrel-built
// multi-row insert) that want transaction control beyond a single Conn.
func (p *Pool) DB() *sqlx.DB {
	return p.db
}

// Acquire checks out one connection, blocking (per database/sql's own
// semantics) until the pool has room or ctx is done.
func (p *Pool) Acquire(ctx context.Context) (*sqlx.Conn, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, ErrPoolClosed
	}

	conn, err := p.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("dbpool: acquire: %w", err)
	}
	return conn, nil
}

// Release returns a connection to the pool.
func (p *Pool) Release(conn *sqlx.Conn) error {
	if conn == nil {
		return nil
	}
	return conn.Close()
}

// Close closes every session. Subsequent Acquire calls return
// ErrPoolClosed.
func (p *Pool) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return p.db.Close()
}
