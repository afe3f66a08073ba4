// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cise-syslog/ingestd/internal/model"
)

// jsonRule is the on-disk shape an operator may supply via
// config.Keys.ClassifierRulesFile to override the embedded R1-R6 table
// without a binary rebuild. Order in the file is the priority order: the
// first rule whose expr evaluates true wins, exactly like defaultRules.
type jsonRule struct {
	Name   string `json:"name"`
	Expr   string `json:"expr"`
	Target string `json:"target"`
}

// LoadRules reads a JSON array of {name, expr, target} from path and
// checks every target names a known table. It does not compile the
// expressions; New does that, the same way it compiles the embedded
// default set. A missing or unreadable file is returned as an error.
func LoadRules(path string) ([]RuleDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed []jsonRule
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("classifier: decoding rules file %s: %w", path, err)
	}

	rules := make([]RuleDef, 0, len(parsed))
	for _, p := range parsed {
		target := model.Family(p.Target)
		if _, ok := model.TableSchemas[target]; !ok {
			return nil, fmt.Errorf("classifier: rule %q names unknown target table %q", p.Name, p.Target)
		}
		rules = append(rules, RuleDef{name: p.Name, expr: p.Expr, target: target})
	}
	return rules, nil
}
