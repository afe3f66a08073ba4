// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dbpool

import (
	"context"
	"time"

	log "github.com/cise-syslog/ingestd/pkg/log"
)

type queryTimeKey struct{}

// Hooks satisfies sqlhooks.Hooks, logging every statement's text and
// elapsed time at Debug level.
type Hooks struct{}

func (h *Hooks) Before(ctx context.Context, query string, args ...interface{}) (context.Context, error) {
	log.Debugf("sql query %s %q", query, args)
	return context.WithValue(ctx, queryTimeKey{}, time.Now()), nil
}

func (h *Hooks) After(ctx context.Context, query string, args ...interface{}) (context.Context, error) {
	if begin, ok := ctx.Value(queryTimeKey{}).(time.Time); ok {
		log.Debugf("sql query took %s", time.Since(begin))
	}
	return ctx, nil
}
