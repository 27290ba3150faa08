package sensor

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestCatalog(t *testing.T) {
	if len(Catalog) != 11 {
		t.Fatalf("catalog has %d entries, want 11", len(Catalog))
	}

	seen := make(map[string]bool)
	for v := Variable(0); v < NumVariables; v++ {
		info := Catalog[v]
		if info.Name == "" || info.Unit == "" {
			t.Errorf("variable %d has empty name or unit: %+v", v, info)
		}
		if seen[info.Name] {
			t.Errorf("duplicate variable name %q", info.Name)
		}
		seen[info.Name] = true
	}

	if Noise.String() != "noise" || PM25.String() != "pm25" {
		t.Errorf("String(): got %q/%q", Noise.String(), PM25.String())
	}
	for _, v := range []Variable{PM1, PM25, PM10} {
		if !Catalog[v].Integer {
			t.Errorf("%s should display as integer", v)
		}
	}
}

func TestCompensator(t *testing.T) {
	cpu := 45.0
	c := NewCompensator(5, 2.25, func() float64 { return cpu })

	var got float64
	for i := 0; i < 10; i++ {
		got = c.Compensate(25.0)
	}

	// Window saturated at 45: 25 - (45-25)/2.25
	want := 25.0 - (45.0-25.0)/2.25
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Compensate: got %v, want %v", got, want)
	}

	// A cooler CPU than the sensor pushes the reading up.
	cpu = 10.0
	for i := 0; i < 5; i++ {
		got = c.Compensate(25.0)
	}
	if got <= 25.0 {
		t.Errorf("expected upward correction, got %v", got)
	}
}

func TestThrottledCachesBetweenReads(t *testing.T) {
	reads := 0
	th := NewThrottled(2*time.Second, func() ([]float64, error) {
		reads++
		return []float64{float64(reads), 0, 0}, nil
	}, nil)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	th.now = func() time.Time { return now }

	first, err := th.Read(3)
	if err != nil || first[0] != 1 {
		t.Fatalf("first read: got %v, %v", first, err)
	}

	now = now.Add(500 * time.Millisecond)
	cached, err := th.Read(3)
	if err != nil || cached[0] != 1 {
		t.Fatalf("expected cached value, got %v, %v", cached, err)
	}
	if reads != 1 {
		t.Fatalf("underlying read called %d times, want 1", reads)
	}

	now = now.Add(2 * time.Second)
	fresh, _ := th.Read(3)
	if fresh[0] != 2 {
		t.Errorf("expected fresh value 2, got %v", fresh[0])
	}
}

func TestThrottledKeepsCacheOnError(t *testing.T) {
	fail := false
	resets := 0
	th := NewThrottled(0, func() ([]float64, error) {
		if fail {
			return nil, errors.New("serial timeout")
		}
		return []float64{7}, nil
	}, func() { resets++ })

	if vals, err := th.Read(1); err != nil || vals[0] != 7 {
		t.Fatalf("initial read: %v, %v", vals, err)
	}

	fail = true
	vals, err := th.Read(1)
	if err == nil {
		t.Fatal("expected error from failing read")
	}
	if vals[0] != 7 {
		t.Errorf("cache lost on error: got %v", vals[0])
	}
	if resets != 1 {
		t.Errorf("reset hook called %d times, want 1", resets)
	}
}

func TestAmpToDB(t *testing.T) {
	if got := AmpToDB(0); got != 0 {
		t.Errorf("AmpToDB(0): got %v, want 0", got)
	}
	if got := AmpToDB(-3); got != 0 {
		t.Errorf("AmpToDB(-3): got %v, want 0", got)
	}

	got := AmpToDB(1)
	want := 20.0 * math.Log10(65.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("AmpToDB(1): got %v, want %v", got, want)
	}

	if AmpToDB(10) <= AmpToDB(1) {
		t.Error("AmpToDB should be monotonic in amplitude")
	}
}

func TestSimStaysFiniteAndNonNegative(t *testing.T) {
	s := NewSim(42)
	for i := 0; i < 500; i++ {
		r, err := s.ReadAll()
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		for v := Variable(0); v < NumVariables; v++ {
			if math.IsNaN(r[v]) || math.IsInf(r[v], 0) || r[v] < 0 {
				t.Fatalf("tick %d: %s = %v", i, v, r[v])
			}
		}
	}

	if p, err := s.Proximity(); err != nil || p != 0 {
		t.Errorf("Proximity: got %v, %v", p, err)
	}
}
