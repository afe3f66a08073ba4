// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package classifier

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/cise-syslog/ingestd/internal/model"
)

// env is the value an expr program sees when a rule predicate runs.
// Contains is handed in rather than relying on expr's builtins so rule
// expressions read close to the Python dispatcher they're grounded on.
type env struct {
	Text     string
	Fields   map[string]string
	Contains func(s, substr string) bool
}

// RuleDef is a single entry of the priority-ordered routing table.
type RuleDef struct {
	name   string
	expr   string
	target model.Family
}

// defaultRules is the built-in R1-R6 priority table, evaluated top to bottom;
// the first match wins. An operator may override this with a
// "classifier-rules" config entry carrying the same {name, expr, target}
// shape; absent that, this embedded set is what ships.
var defaultRules = []RuleDef{
	{
		name:   "R1",
		expr:   `Contains(Text, "CISE_Failed_Attempts") && Contains(Text, "Failed-Attempt: Authentication failed") && Contains(Text, "Protocol=Tacacs")`,
		target: model.FTA,
	},
	{
		name:   "R2",
		expr:   `Contains(Text, "CISE_Failed_Attempts") && Contains(Fields["NetworkDeviceName"], "WLC") && Contains(Fields["CalledStationID"], "HO")`,
		target: model.FWA,
	},
	{
		name:   "R3",
		expr:   `Contains(Text, "CISE_Failed_Attempts") && Contains(Fields["NetworkDeviceName"], "-")`,
		target: model.FLA,
	},
	{
		name:   "R4",
		expr:   `Contains(Text, "CISE_TACACS_Accounting") && Contains(Text, "TACACS+ Accounting with Command") && !Contains(Text, "EEM:") && !Contains(Fields["CmdSet"], "terminal pager 0")`,
		target: model.TCA,
	},
	{
		name:   "R5",
		expr:   `Contains(Text, "CISE_Passed_Authentications") && !Contains(Text, "Command Auth") && !Contains(Text, "Protocol=Tacacs") && Contains(Fields["NetworkDeviceName"], "WLC")`,
		target: model.PWA,
	},
	{
		name:   "R6",
		expr:   `Contains(Text, "CISE_Passed_Authentications") && !Contains(Text, "Command Auth") && !Contains(Text, "Protocol=Tacacs") && Contains(Fields["NDDeviceType"], "switch")`,
		target: model.PLA,
	},
}

// compiledRule pairs a RuleDef with its compiled program.
type compiledRule struct {
	RuleDef
	program *vm.Program
}

func compileRules(defs []RuleDef) ([]compiledRule, error) {
	compiled := make([]compiledRule, 0, len(defs))
	for _, d := range defs {
		program, err := expr.Compile(d.expr, expr.Env(env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("classifier: compiling rule %s: %w", d.name, err)
		}
		compiled = append(compiled, compiledRule{RuleDef: d, program: program})
	}
	return compiled, nil
}
