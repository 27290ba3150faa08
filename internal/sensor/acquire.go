package sensor

import (
	"math"
	"time"
)

// Compensator corrects BME280 temperature readings for heat bleeding in
// from the CPU, using a rolling average of recent CPU temperatures.
type Compensator struct {
	readCPU func() float64
	factor  float64
	samples []float64
	next    int
}

// NewCompensator creates a compensator holding the given number of CPU
// temperature samples. The window starts filled with 25 C so early
// readings are not skewed by zeroes.
func NewCompensator(samples int, factor float64, readCPU func() float64) *Compensator {
	s := make([]float64, samples)
	for i := range s {
		s[i] = 25.0
	}
	return &Compensator{readCPU: readCPU, factor: factor, samples: s}
}

// Compensate samples the CPU temperature, rolls it into the window and
// returns the corrected sensor temperature.
func (c *Compensator) Compensate(raw float64) float64 {
	c.samples[c.next] = c.readCPU()
	c.next = (c.next + 1) % len(c.samples)

	sum := 0.0
	for _, v := range c.samples {
		sum += v
	}
	avg := sum / float64(len(c.samples))

	return raw - ((avg - raw) / c.factor)
}

// Throttled rate-limits an expensive multi-channel acquisition (the
// PMS5003 only refreshes every couple of seconds) and serves cached
// values between real reads. A failed read keeps the cache, invokes the
// optional reset hook and reports the error to the caller.
type Throttled struct {
	read     func() ([]float64, error)
	reset    func()
	interval time.Duration
	now      func() time.Time

	cached   []float64
	lastRead time.Time
}

// NewThrottled wraps read with the given minimum interval between real
// acquisitions. reset may be nil.
func NewThrottled(interval time.Duration, read func() ([]float64, error), reset func()) *Throttled {
	return &Throttled{
		read:     read,
		reset:    reset,
		interval: interval,
		now:      time.Now,
	}
}

// Read returns fresh values when the interval has elapsed, cached values
// otherwise. Before the first successful read the cache is all zeroes.
func (t *Throttled) Read(channels int) ([]float64, error) {
	if t.cached == nil {
		t.cached = make([]float64, channels)
	}

	now := t.now()
	if !t.lastRead.IsZero() && now.Sub(t.lastRead) < t.interval {
		return t.cached, nil
	}

	vals, err := t.read()
	if err != nil {
		if t.reset != nil {
			t.reset()
		}
		return t.cached, err
	}

	copy(t.cached, vals)
	t.lastRead = now
	return t.cached, nil
}

// LightGateProximity is the proximity level above which the lux reading
// is meaningless: a hand close enough to trigger mode switching shades
// the light sensor, so the reading is pinned to 1.0 instead.
const LightGateProximity = 10.0

// AmpToDB converts an ICS-43432 microphone amplitude to an approximate
// dB SPL figure. Non-positive amplitudes map to 0.
func AmpToDB(amp float64) float64 {
	if amp <= 0 {
		return 0.0
	}
	return math.Max(0.0, 20.0*math.Log10(amp*64.0+1.0))
}
