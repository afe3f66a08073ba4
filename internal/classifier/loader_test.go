// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cise-syslog/ingestd/internal/model"
)

func TestLoadRulesParsesAndCompiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	body := `[
		{"name": "R1", "expr": "Contains(Text, \"CISE_Failed_Attempts\")", "target": "fta"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 1)

	c, err := New(rules, nil)
	require.NoError(t, err)

	res := c.Classify(model.WholeMessage{Text: "CISE_Failed_Attempts something"})
	assert.Equal(t, Routed, res.Verdict)
}

func TestLoadRulesRejectsUnknownTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.json")
	body := `[{"name": "RX", "expr": "true", "target": "nope"}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadRules(path)
	assert.Error(t, err)
}

func TestLoadRulesMissingFileReturnsError(t *testing.T) {
	_, err := LoadRules("/no/such/rules.json")
	assert.Error(t, err)
}
