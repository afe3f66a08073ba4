// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"net"
	"strconv"
	"strings"

	log "github.com/cise-syslog/ingestd/pkg/log"
)

// AllowList reports whether a source IP is one the classifier should
// accept messages from. Entries in source_allow_list are one of:
//   - a bare IP ("10.23.252.3")
//   - a CIDR block ("10.23.18.0/24")
//   - a last-octet range ("10.23.18.218-223")
type AllowList struct {
	exact map[string]struct{}
	nets  []*net.IPNet
	ranges []octetRange
}

type octetRange struct {
	prefix   string // "10.23.18."
	from, to int
}

// NewAllowList parses entries into an AllowList. Malformed entries are
// logged and skipped rather than failing startup.
func NewAllowList(entries []string) *AllowList {
	a := &AllowList{exact: make(map[string]struct{})}
	for _, e := range entries {
		e = strings.TrimSpace(e)
		switch {
		case e == "":
			continue
		case strings.Contains(e, "/"):
			_, ipnet, err := net.ParseCIDR(e)
			if err != nil {
				log.Warnf("config: invalid allow-list CIDR %q: %v", e, err)
				continue
			}
			a.nets = append(a.nets, ipnet)
		case strings.Contains(e, "-"):
			r, ok := parseOctetRange(e)
			if !ok {
				log.Warnf("config: invalid allow-list range %q", e)
				continue
			}
			a.ranges = append(a.ranges, r)
		default:
			if net.ParseIP(e) == nil {
				log.Warnf("config: invalid allow-list IP %q", e)
				continue
			}
			a.exact[e] = struct{}{}
		}
	}
	return a
}

// parseOctetRange parses "10.23.18.218-223" into a prefix "10.23.18." and
// an inclusive [from, to] range over the last octet.
func parseOctetRange(s string) (octetRange, bool) {
	lastDot := strings.LastIndex(s, ".")
	if lastDot < 0 {
		return octetRange{}, false
	}
	prefix, tail := s[:lastDot+1], s[lastDot+1:]

	parts := strings.SplitN(tail, "-", 2)
	if len(parts) != 2 {
		return octetRange{}, false
	}
	from, err1 := strconv.Atoi(parts[0])
	to, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || from < 0 || to > 255 || from > to {
		return octetRange{}, false
	}
	return octetRange{prefix: prefix, from: from, to: to}, true
}

// Allowed reports whether ip matches any configured entry. An AllowList
// with no entries allows nothing, matching spec's "configured set" — an
// empty allow-list is a misconfiguration the operator must fix, not an
// implicit allow-all.
func (a *AllowList) Allowed(ip string) bool {
	if a == nil {
		return false
	}
	if _, ok := a.exact[ip]; ok {
		return true
	}
	for _, r := range a.ranges {
		if !strings.HasPrefix(ip, r.prefix) {
			continue
		}
		tail := strings.TrimPrefix(ip, r.prefix)
		n, err := strconv.Atoi(tail)
		if err != nil {
			continue
		}
		if n >= r.from && n <= r.to {
			return true
		}
	}
	if len(a.nets) > 0 {
		parsed := net.ParseIP(ip)
		if parsed != nil {
			for _, n := range a.nets {
				if n.Contains(parsed) {
					return true
				}
			}
		}
	}
	return false
}
