// Package timeouts provides centralized timeout values for handler
// operations.
//
// These are used with context.WithTimeout for database and filesystem
// work inside HTTP handlers, so one place controls how long any request
// may hold a connection.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads or lookups
//   - Medium: list queries and single-document writes
//   - Long: multi-step operations (file write plus document update)
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for connectivity checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for simple lookups.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and single writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for multi-step operations.
func Long() time.Duration { return long }
