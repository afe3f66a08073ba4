// Copyright (C) 2026 The CISE Syslog Ingest Authors.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

// configSchema describes the on-disk config.json shape and is validated
// against before the file is decoded into Config.
var configSchema = `
{
  "type": "object",
  "properties": {
    "listen_addr": {
      "description": "UDP address the receiver binds to (for example '0.0.0.0:514').",
      "type": "string"
    },
    "db_driver": {
      "description": "Database driver: sqlite3 or mysql.",
      "type": "string",
      "enum": ["sqlite3", "mysql"]
    },
    "db_dsn": {
      "description": "Data source name. May be given as 'env:VARNAME' to read it from the environment instead.",
      "type": "string"
    },
    "min_conn": {
      "description": "Minimum number of pooled DB connections.",
      "type": "integer",
      "minimum": 0
    },
    "max_conn": {
      "description": "Maximum number of pooled DB connections.",
      "type": "integer",
      "minimum": 1
    },
    "max_queue_size": {
      "description": "Capacity of the bounded ingestion queue.",
      "type": "integer",
      "minimum": 1
    },
    "max_batch_size": {
      "description": "Number of rows accumulated per table before a size-triggered flush.",
      "type": "integer",
      "minimum": 1
    },
    "max_wait_time": {
      "description": "Maximum age (as a Go duration string, e.g. '60s') a batch is held before an age-triggered flush.",
      "type": "string"
    },
    "flush_interval": {
      "description": "How often each worker flushes every table's sink, as a Go duration string.",
      "type": "string"
    },
    "message_timeout": {
      "description": "How long an incomplete fragment buffer is kept before being swept and forwarded as a partial message, as a Go duration string.",
      "type": "string"
    },
    "min_workers": {
      "description": "Worker pool floor; the supervisor respawns workers up to this count.",
      "type": "integer",
      "minimum": 1
    },
    "max_workers": {
      "description": "Worker pool ceiling, spawned at startup.",
      "type": "integer",
      "minimum": 1
    },
    "drain_timeout": {
      "description": "Bounded wait on shutdown for the queue to drain before the pool is stopped anyway, as a Go duration string.",
      "type": "string"
    },
    "source_allow_list": {
      "description": "Source IPs the classifier accepts messages from. Entries are single IPs, CIDR blocks, or 'a.b.c.d-e' last-octet ranges.",
      "type": "array",
      "items": {
        "type": "string"
      }
    },
    "monitoring": {
      "description": "Paths the supervisor writes periodic samples to.",
      "type": "object",
      "properties": {
        "counter_file": {
          "type": "string"
        },
        "per_ip_file": {
          "type": "string"
        },
        "sample_interval": {
          "type": "string"
        }
      }
    },
    "nats": {
      "description": "Optional fan-out notification of unhandled messages and dropped batches.",
      "type": "object",
      "properties": {
        "address": {
          "type": "string"
        }
      }
    },
    "user": {
      "description": "Drop root permissions to this user once the (possibly privileged) port is bound.",
      "type": "string"
    },
    "group": {
      "description": "Drop root permissions to this group once the (possibly privileged) port is bound.",
      "type": "string"
    },
    "classifier_rules_file": {
      "description": "Optional path to a JSON file overriding the embedded default classifier rule set.",
      "type": "string"
    }
  }
}
`
