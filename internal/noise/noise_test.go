package noise

import (
	"testing"
	"time"
)

var testWatch = Watch{Base: 65, Reduction: 10, NightStart: 22, NightEnd: 7}

func at(hour int) time.Time {
	return time.Date(2026, 3, 1, hour, 30, 0, 0, time.Local)
}

func TestNightWindowWrapsMidnight(t *testing.T) {
	cases := []struct {
		hour  int
		night bool
	}{
		{21, false},
		{22, true},
		{23, true},
		{0, true},
		{6, true},
		{7, false},
		{12, false},
	}
	for _, c := range cases {
		if got := testWatch.Night(at(c.hour)); got != c.night {
			t.Errorf("Night(hour=%d): got %v, want %v", c.hour, got, c.night)
		}
	}
}

func TestObserveNightThreshold(t *testing.T) {
	l := NewEventLog(testWatch, 100)

	// 56 dB at hour 23: effective threshold is 55, fires.
	ev, ok := l.Observe(56, at(23))
	if !ok {
		t.Fatal("expected event at hour 23 for 56 dB")
	}
	if ev.Type != TypeNightWatch {
		t.Errorf("event type: got %q, want %q", ev.Type, TypeNightWatch)
	}
	if ev.DB != 56.0 {
		t.Errorf("event level: got %v, want 56.0", ev.DB)
	}

	// Same level at noon: threshold back at 65, no event.
	if _, ok := l.Observe(56, at(12)); ok {
		t.Error("unexpected event at hour 12 for 56 dB")
	}

	// Daytime excursion above base threshold.
	ev, ok = l.Observe(70.26, at(12))
	if !ok {
		t.Fatal("expected event at hour 12 for 70.26 dB")
	}
	if ev.Type != TypeDaytime {
		t.Errorf("event type: got %q, want %q", ev.Type, TypeDaytime)
	}
	if ev.DB != 70.3 {
		t.Errorf("event level: got %v, want 70.3 (one decimal)", ev.DB)
	}
}

func TestEventLogCapFIFO(t *testing.T) {
	l := NewEventLog(testWatch, 100)
	base := at(12)

	for i := 0; i < 150; i++ {
		if _, ok := l.Observe(80+float64(i%5), base.Add(time.Duration(i)*time.Second)); !ok {
			t.Fatalf("observation %d did not fire", i)
		}
	}

	if l.Len() != 100 {
		t.Fatalf("log retains %d events, want 100", l.Len())
	}

	evs := l.Events()
	// Oldest retained is observation 50; order preserved.
	if want := base.Add(50 * time.Second); !evs[0].Timestamp.Equal(want) {
		t.Errorf("oldest retained timestamp: got %v, want %v", evs[0].Timestamp, want)
	}
	for i := 1; i < len(evs); i++ {
		if !evs[i].Timestamp.After(evs[i-1].Timestamp) {
			t.Fatalf("events out of order at index %d", i)
		}
	}
}
