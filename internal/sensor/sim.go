package sensor

import (
	"math"
	"math/rand"
)

// simTargets are the per-channel resting points the simulated walk
// reverts to, chosen to sit inside each variable's Normal band.
var simTargets = Reading{
	Noise:       48,
	Temperature: 21.5,
	Pressure:    1008,
	Humidity:    45,
	Light:       320,
	Oxidised:    18,
	Reduced:     220,
	NH3:         90,
	PM1:         6,
	PM25:        10,
	PM10:        14,
}

// simSpread scales the per-tick random fluctuation of each channel.
var simSpread = Reading{
	Noise:       4,
	Temperature: 0.3,
	Pressure:    0.5,
	Humidity:    1.2,
	Light:       40,
	Oxidised:    0.8,
	Reduced:     6,
	NH3:         3,
	PM1:         1,
	PM25:        1.5,
	PM10:        2,
}

// Sim is a mean-reverting random-walk Suite so the daemon and its tests
// can run without an Enviro+ HAT attached.
type Sim struct {
	rng     *rand.Rand
	current Reading
}

// NewSim creates a simulated suite seeded for reproducible runs.
func NewSim(seed int64) *Sim {
	return &Sim{
		rng:     rand.New(rand.NewSource(seed)),
		current: simTargets,
	}
}

// ReadAll advances every channel one step toward its target plus noise.
func (s *Sim) ReadAll() (Reading, error) {
	for v := Variable(0); v < NumVariables; v++ {
		diff := simTargets[v] - s.current[v]
		jitter := (s.rng.Float64() - 0.5) * simSpread[v]
		s.current[v] += diff*0.1 + jitter
		s.current[v] = math.Max(0, s.current[v])
	}
	return s.current, nil
}

// Proximity reports no hand present; the simulator never switches
// display modes on its own.
func (s *Sim) Proximity() (float64, error) {
	return 0, nil
}
