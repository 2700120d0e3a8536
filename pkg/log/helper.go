package log

import (
	stdlog "log"
)

// MustInit initializes the SQLite sink at dbPath or exits.
func MustInit(dbPath string) {
	if err := Init(dbPath); err != nil {
		stdlog.Fatalf("FATAL: Failed to initialize logger: %v\n", err)
	}
}
