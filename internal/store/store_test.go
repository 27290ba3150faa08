package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/luki/enviromon/internal/sensor"
)

func testReading(temp float64) sensor.Reading {
	var r sensor.Reading
	r[sensor.Temperature] = temp
	r[sensor.Noise] = 48
	r[sensor.PM25] = 9
	return r
}

func TestAppendCountRecent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "enviro.db"), 24*time.Hour)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := s.Append(base.Add(time.Duration(i)*time.Second), testReading(20+float64(i))); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	n, err := s.Count()
	if err != nil || n != 5 {
		t.Fatalf("Count: got %d, %v; want 5", n, err)
	}

	rows, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Recent(2): got %d rows", len(rows))
	}
	if rows[0].Temperature != 24 || rows[1].Temperature != 23 {
		t.Errorf("Recent order: got %v, %v; want newest first", rows[0].Temperature, rows[1].Temperature)
	}
}

func TestAppendPrunesOldRows(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "enviro.db"), 24*time.Hour)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := s.Append(base, testReading(18)); err != nil {
		t.Fatal(err)
	}
	if err := s.Append(base.Add(23*time.Hour), testReading(19)); err != nil {
		t.Fatal(err)
	}

	// Third insert 25h after the first: the first row falls outside
	// the window and is pruned by the same call.
	if err := s.Append(base.Add(25*time.Hour), testReading(20)); err != nil {
		t.Fatal(err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("rows after prune: got %d, want 2", n)
	}

	rows, err := s.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range rows {
		if row.Temperature == 18 {
			t.Error("expired row still present")
		}
	}
}
