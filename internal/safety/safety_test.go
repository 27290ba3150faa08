package safety

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	band := Band{DangerouslyLow: 4, Low: 18, High: 28, DangerouslyHigh: 35}

	cases := []struct {
		value float64
		want  Class
	}{
		{3, DangerouslyLow},
		{4, Low},
		{17.9, Low},
		{23, Normal}, // midpoint of [18, 28]
		{28, Normal},
		{28.1, High},
		{35, High},
		{36, DangerouslyHigh},
	}

	for _, c := range cases {
		got := Classify(c.value, band)
		if got != c.want {
			t.Errorf("Classify(%v): got %v, want %v", c.value, got, c.want)
		}
	}
}

func TestClassifyNoLowerBound(t *testing.T) {
	band := Band{DangerouslyLow: NoBound, Low: NoBound, High: 50, DangerouslyHigh: 100}

	for _, v := range []float64{-1000, -1, 0, 25, 50} {
		if got := Classify(v, band); got != Normal {
			t.Errorf("Classify(%v) with no lower bound: got %v, want Normal", v, got)
		}
	}

	if got := Classify(51, band); got != High {
		t.Errorf("Classify(51): got %v, want High", got)
	}
	if got := Classify(101, band); got != DangerouslyHigh {
		t.Errorf("Classify(101): got %v, want DangerouslyHigh", got)
	}
}

func TestClassColor(t *testing.T) {
	if c := DangerouslyHigh.Color(); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("DangerouslyHigh color: got %+v, want red", c)
	}
	if c := DangerouslyLow.Color(); c.B != 255 || c.R != 0 {
		t.Errorf("DangerouslyLow color: got %+v, want blue", c)
	}
}
