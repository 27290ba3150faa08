package sysinfo

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFormatUptime(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "0h 0m 0s"},
		{61 * time.Second, "0h 1m 1s"},
		{3*time.Hour + 25*time.Minute + 7*time.Second, "3h 25m 7s"},
		{-5 * time.Second, "0h 0m 0s"},
	}
	for _, c := range cases {
		got := FormatUptime(start, start.Add(c.elapsed))
		if got != c.want {
			t.Errorf("FormatUptime(+%v): got %q, want %q", c.elapsed, got, c.want)
		}
	}
}

func TestExtIPDefaultsUntilFetched(t *testing.T) {
	e := NewExtIP(time.Minute, discardLogger())
	if got := e.Addr(); got != "..." {
		t.Errorf("initial Addr: got %q, want \"...\"", got)
	}
}
