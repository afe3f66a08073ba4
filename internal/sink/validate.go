// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sink

import (
	"fmt"
	"net"
	"strconv"

	"github.com/cise-syslog/ingestd/internal/model"
)

// validateRow enforces the validation rules against a target
// table's column list. The first failing check is returned as an error;
// the caller treats any error as "reject the whole row".
func validateRow(columns []model.Column, values []any) error {
	if len(values) != len(columns) {
		return fmt.Errorf("sink: row has %d values, table expects %d", len(values), len(columns))
	}

	for i, col := range columns {
		v := values[i]
		if isNil(v) {
			if col.NotNull {
				return fmt.Errorf("sink: column %q is not-null but value is nil", col.Name)
			}
			continue
		}

		switch col.Type {
		case model.ColInet:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("sink: column %q expects an inet string, got %T", col.Name, v)
			}
			if s != "" && net.ParseIP(s) == nil {
				return fmt.Errorf("sink: column %q is not a valid IP literal: %q", col.Name, s)
			}
		case model.ColInt:
			switch t := v.(type) {
			case int, int32, int64:
				// already numeric
			case string:
				if _, err := strconv.Atoi(t); err != nil {
					return fmt.Errorf("sink: column %q is not an integer string: %q", col.Name, t)
				}
			default:
				return fmt.Errorf("sink: column %q expects an int, got %T", col.Name, v)
			}
		case model.ColText:
			if _, ok := v.(string); !ok {
				return fmt.Errorf("sink: column %q expects a string, got %T", col.Name, v)
			}
		}
	}

	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}
