// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	log "github.com/cise-syslog/ingestd/pkg/log"
)

// Validate checks instance (a config.json document) against schema, a raw
// JSON Schema string. It is fatal: a malformed or non-conforming config is
// not something the daemon can run degraded against.
func Validate(schema string, instance json.RawMessage) {
	sch, err := jsonschema.CompileString("config-schema.json", schema)
	if err != nil {
		log.Fatalf("%#v", err)
	}

	var v any
	if err := json.Unmarshal(instance, &v); err != nil {
		log.Fatal(err)
	}

	if err := sch.Validate(v); err != nil {
		log.Fatalf("%#v", err)
	}
}
