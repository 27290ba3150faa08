package history

import (
	"math"
	"testing"
)

func TestSeriesLengthInvariant(t *testing.T) {
	s := NewSeries(80)
	if s.Len() != 80 {
		t.Fatalf("initial length %d, want 80", s.Len())
	}

	for i := 0; i < 1000; i++ {
		s.Push(float64(i))
		if s.Len() != 80 {
			t.Fatalf("length %d after %d pushes, want 80", s.Len(), i+1)
		}
	}

	if s.Latest() != 999 {
		t.Errorf("Latest: got %v, want 999", s.Latest())
	}
	w := s.Window()
	if w[0] != 920 {
		t.Errorf("oldest sample: got %v, want 920", w[0])
	}
}

func TestNormalizeRange(t *testing.T) {
	s := NewSeries(10)
	for _, v := range []float64{-5, 3, 17, -2, 0, 8, 8, 21, -5, 4} {
		s.Push(v)
	}

	norm := Normalize(s.Window())
	if len(norm) != 10 {
		t.Fatalf("normalized length %d, want 10", len(norm))
	}
	for i, m := range norm {
		if m <= 0 || m > 1 {
			t.Errorf("magnitude %d = %v outside (0,1]", i, m)
		}
	}
}

func TestNormalizeConstantWindow(t *testing.T) {
	s := NewSeries(20)
	for i := 0; i < 20; i++ {
		s.Push(20.0)
	}

	// min == max: every magnitude is (v-v+1)/(0+1) = 1.
	for i, m := range Normalize(s.Window()) {
		if m != 1.0 {
			t.Errorf("magnitude %d = %v, want exactly 1.0", i, m)
		}
	}
}

func TestHue(t *testing.T) {
	if h := Hue(1.0); h != 0 {
		t.Errorf("Hue(1): got %v, want 0 (red)", h)
	}
	if h := Hue(0.0); math.Abs(h-0.6) > 1e-12 {
		t.Errorf("Hue(0): got %v, want 0.6 (blue)", h)
	}
}

func TestColorEndpoints(t *testing.T) {
	hot := Color(1.0)
	if hot.R != 255 || hot.G != 0 || hot.B != 0 {
		t.Errorf("Color(1.0): got %+v, want red", hot)
	}

	cold := Color(0.0)
	// Hue 0.6 of the circle is 216 degrees: blue-dominant.
	if cold.B != 255 || cold.R >= cold.B {
		t.Errorf("Color(0.0): got %+v, want blue-dominant", cold)
	}
}
