// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package classifier implements the classifier/router: it runs the field
// extractor over a WholeMessage, applies the priority-ordered rule table to
// the text and extracted fields, and hands back a row shaped for the
// matching family's table.
package classifier

import (
	"regexp"
	"strings"
	"time"

	"github.com/expr-lang/expr/vm"

	"github.com/cise-syslog/ingestd/internal/extractor"
	"github.com/cise-syslog/ingestd/internal/model"
)

// Verdict is the outcome of classifying one WholeMessage. It is kept
// separate from model.Family: "ignored" and "unhandled" are not target
// tables, they're the classifier declining to route at all.
type Verdict int

const (
	// Routed means Row is populated and ready for a sink.
	Routed Verdict = iota
	// Ignored means the message matched a known silent-drop case
	// ("TACACS+ Accounting request rejected").
	Ignored
	// Unhandled means no rule matched; Token carries the CISE_<word>
	// marker for diagnostics, if one was present.
	Unhandled
)

// Result is what Classify returns.
type Result struct {
	Verdict Verdict
	Row     model.ClassifiedRow
	Token   string
}

var rejectedAccounting = "TACACS+ Accounting request rejected"

var unhandledToken = regexp.MustCompile(`CISE_\w+`)

// Classifier holds the compiled rule set. It is immutable after New and
// safe for concurrent use by every worker.
type Classifier struct {
	rules []compiledRule
	now   func() time.Time
}

// New compiles rules (nil uses the embedded default R1-R6 table) and
// returns a ready Classifier. now defaults to time.Now; tests inject a
// fixed clock for the wall-clock timestamp fallback.
func New(rules []RuleDef, now func() time.Time) (*Classifier, error) {
	if rules == nil {
		rules = defaultRules
	}
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &Classifier{rules: compiled, now: now}, nil
}

// Classify routes one WholeMessage against the R1-R6 priority table.
func (c *Classifier) Classify(msg model.WholeMessage) Result {
	if strings.Contains(msg.Text, rejectedAccounting) {
		return Result{Verdict: Ignored}
	}

	fields := extractor.Extract(msg.Text)
	e := env{Text: msg.Text, Fields: fields, Contains: strings.Contains}

	for _, r := range c.rules {
		matched, err := runRule(r.program, e)
		if err != nil || !matched {
			continue
		}
		ts, ok := extractor.Timestamp(msg.Text)
		if !ok {
			ts = c.now().UTC().Format("2006-01-02 15:04:05.000 -07:00")
		}
		return Result{Verdict: Routed, Row: buildRow(r.target, msg.SourceIP, ts, fields)}
	}

	token := unhandledToken.FindString(msg.Text)
	return Result{Verdict: Unhandled, Token: token}
}

func runRule(program *vm.Program, e env) (bool, error) {
	out, err := vm.Run(program, e)
	if err != nil {
		return false, err
	}
	matched, _ := out.(bool)
	return matched, nil
}
