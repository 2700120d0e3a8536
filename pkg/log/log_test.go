package log

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestSQLiteSinkRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "logs.db")
	if err := Init(dbPath); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	Info().Str("op", "split").Int("tokens", 3).Msg("tokenized input")
	Warn().Msg("second entry")

	entries, err := GetLastNLogs(10)
	if err != nil {
		t.Fatalf("GetLastNLogs failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !strings.Contains(entries[0].LogData, "tokenized input") {
		t.Errorf("first entry = %q, want the info event first", entries[0].LogData)
	}
}

func TestGetLogsBeforeInit(t *testing.T) {
	// The package keeps global state; only meaningful when Init has not
	// run in this process yet, so drive it through Close.
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := GetLastNLogs(5); err != ErrNotInitialized {
		t.Errorf("error = %v, want ErrNotInitialized", err)
	}
}
