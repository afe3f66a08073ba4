// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cise-syslog/ingestd/internal/model"
)

func TestValidateRowRejectsWrongLength(t *testing.T) {
	cols := model.TableSchemas[model.FTA]
	err := validateRow(cols, []any{"only one value"})
	assert.Error(t, err)
}

func TestValidateRowRejectsMissingNotNullTimestamp(t *testing.T) {
	cols := model.TableSchemas[model.FTA]
	values := []any{nil, "1.2.3.4", "alice", "10.0.0.5", "10.0.0.9", "bad", "ASA", 12}
	err := validateRow(cols, values)
	assert.Error(t, err)
}

func TestValidateRowRejectsBadInet(t *testing.T) {
	cols := model.TableSchemas[model.TCA]
	values := []any{"2026-07-31 10:00:00.000 +00:00", "admin", "SW-1", "not-an-ip", nil, "show version", "5.6.7.8"}
	err := validateRow(cols, values)
	assert.Error(t, err)
}

func TestValidateRowRejectsBadIntString(t *testing.T) {
	cols := model.TableSchemas[model.FTA]
	values := []any{"2026-07-31 10:00:00.000 +00:00", "1.2.3.4", "alice", "10.0.0.5", "10.0.0.9", "bad", "ASA", "not-a-number"}
	err := validateRow(cols, values)
	assert.Error(t, err)
}

func TestValidateRowAcceptsWellFormedFTARow(t *testing.T) {
	cols := model.TableSchemas[model.FTA]
	values := []any{"2026-07-31 10:00:00.000 +00:00", "1.2.3.4", "alice", "10.0.0.5", "10.0.0.9", "bad", "ASA", 12}
	assert.NoError(t, validateRow(cols, values))
}

func TestValidateRowAllowsNullableInetColumn(t *testing.T) {
	cols := model.TableSchemas[model.TCA]
	values := []any{"2026-07-31 10:00:00.000 +00:00", "admin", "SW-1", "10.1.1.1", nil, "show version", "5.6.7.8"}
	assert.NoError(t, validateRow(cols, values))
}
