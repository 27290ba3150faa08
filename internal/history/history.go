// Package history provides fixed-length rolling sample windows with the
// normalization and hue mapping used by the LCD bar charts.
package history

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Series is a sliding window over the last K samples of one variable.
// Its length never changes: every Push drops the oldest sample and
// appends the new one. Owned by the tick loop, no locking.
type Series struct {
	samples []float64
}

// NewSeries creates a window of exactly capacity samples, seeded at 1.0
// so the chart is flat until real data arrives.
func NewSeries(capacity int) *Series {
	s := make([]float64, capacity)
	for i := range s {
		s[i] = 1.0
	}
	return &Series{samples: s}
}

// Push slides the window forward by one sample.
func (s *Series) Push(v float64) {
	copy(s.samples, s.samples[1:])
	s.samples[len(s.samples)-1] = v
}

// Window returns the current samples, oldest first. The slice is the
// live window; callers must not mutate it.
func (s *Series) Window() []float64 {
	return s.samples
}

// Len returns the fixed window length.
func (s *Series) Len() int { return len(s.samples) }

// Latest returns the newest sample.
func (s *Series) Latest() float64 { return s.samples[len(s.samples)-1] }

// Normalize maps a window to unit-interval magnitudes. The +1 offset in
// numerator and denominator keeps the result strictly positive and well
// defined when every sample is equal (all magnitudes become 1).
func Normalize(window []float64) []float64 {
	if len(window) == 0 {
		return nil
	}

	vmin, vmax := window[0], window[0]
	for _, v := range window[1:] {
		if v < vmin {
			vmin = v
		}
		if v > vmax {
			vmax = v
		}
	}

	spread := vmax - vmin + 1
	out := make([]float64, len(window))
	for i, v := range window {
		out[i] = (v - vmin + 1) / spread
	}
	return out
}

// Hue maps a normalized magnitude to a fraction of the hue circle: low
// values toward blue/violet, high values toward red.
func Hue(magnitude float64) float64 {
	return (1.0 - magnitude) * 0.6
}

// Color converts a normalized magnitude to its fully saturated bar
// color via HSV.
func Color(magnitude float64) color.RGBA {
	c := colorful.Hsv(Hue(magnitude)*360.0, 1.0, 1.0)
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
