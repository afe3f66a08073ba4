// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package extractor implements the field extractor: a family-agnostic
// regex library applied to a whole message's text, plus the chunk-header and
// embedded-timestamp patterns the reassembler and classifier need from the
// same message text.
package extractor

import "strings"

// Fields is the named-field mapping the extractor produces for one message.
// Absent fields are simply missing keys; callers use Get.
type Fields map[string]string

// Get returns the named field, or "" if it was never extracted.
func (f Fields) Get(name string) string {
	return f[name]
}

// Has reports whether the named field was extracted at all, distinguishing
// an absent field from one whose extracted value happens to be empty.
func (f Fields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Extract runs every pattern in the library against text with find-all
// semantics: zero matches leaves the field absent, one match is taken
// as-is, and more than one collapses to the unique set of values, joined
// with ", " if more than one unique value remains. UserName is special-cased:
// before deduplication its matches are lower-cased and have '-' stripped, so
// "Alice", "ALICE", "A-lice" all collapse to one value.
func Extract(text string) Fields {
	out := make(Fields, len(patterns))
	for _, p := range patterns {
		matches := p.pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}

		values := make([]string, 0, len(matches))
		for _, m := range matches {
			values = append(values, m[1])
		}

		if p.name == FieldUserName {
			for i, v := range values {
				values[i] = strings.ReplaceAll(strings.ToLower(v), "-", "")
			}
		}

		if len(values) > 1 {
			values = uniqueOrdered(values)
		}

		if p.name == FieldCmdSet {
			for i, v := range values {
				values[i] = strings.ReplaceAll(v, "CmdArgAV=", "")
			}
		}

		if len(values) == 1 {
			out[p.name] = values[0]
		} else {
			out[p.name] = strings.Join(values, ", ")
		}
	}
	return out
}

func uniqueOrdered(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ParseChunkHeader reports whether text begins a fragmented message and, if
// so, its uid/total/index triple.
func ParseChunkHeader(text string) (uid string, total int, index int, ok bool) {
	m := chunkHeader.FindStringSubmatch(text)
	if m == nil {
		return "", 0, 0, false
	}
	uid = m[1]
	total = atoiOrZero(m[2])
	index = atoiOrZero(m[3])
	return uid, total, index, true
}

// Timestamp extracts the message's own embedded timestamp, if present.
func Timestamp(text string) (string, bool) {
	m := timestampPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func atoiOrZero(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}
