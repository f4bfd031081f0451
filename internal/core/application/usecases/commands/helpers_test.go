package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func testTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2025, time.December, 25, 14, 30, 0, 0, time.Local)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
