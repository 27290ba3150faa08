// Package sensor defines the fixed Enviro+ sensor catalog, the per-tick
// reading produced from it, and the acquisition interface the scheduler
// drives. Actual transducer access lives behind Suite so the daemon can
// run against hardware or the built-in simulator.
package sensor

import "github.com/luki/enviromon/internal/safety"

// Variable identifies one of the eleven monitored channels. The ordinal
// value doubles as the LCD bar-graph mode index.
type Variable int

const (
	Noise Variable = iota
	Temperature
	Pressure
	Humidity
	Light
	Oxidised
	Reduced
	NH3
	PM1
	PM25
	PM10

	NumVariables
)

// Info describes one catalog entry.
type Info struct {
	Name    string
	Unit    string
	Integer bool // publish and display as a whole number
	Band    safety.Band
}

// Catalog is the immutable sensor variable catalog, indexed by Variable.
var Catalog = [NumVariables]Info{
	Noise:       {Name: "noise", Unit: "dB", Band: safety.Band{DangerouslyLow: 40, Low: 55, High: 70, DangerouslyHigh: 85}},
	Temperature: {Name: "temperature", Unit: "C", Band: safety.Band{DangerouslyLow: 4, Low: 18, High: 28, DangerouslyHigh: 35}},
	Pressure:    {Name: "pressure", Unit: "hPa", Band: safety.Band{DangerouslyLow: 250, Low: 650, High: 1013.25, DangerouslyHigh: 1015}},
	Humidity:    {Name: "humidity", Unit: "%", Band: safety.Band{DangerouslyLow: 20, Low: 30, High: 60, DangerouslyHigh: 70}},
	Light:       {Name: "light", Unit: "Lux", Band: safety.Band{DangerouslyLow: safety.NoBound, Low: safety.NoBound, High: 30000, DangerouslyHigh: 100000}},
	Oxidised:    {Name: "oxidised", Unit: "kO", Band: safety.Band{DangerouslyLow: safety.NoBound, Low: safety.NoBound, High: 40, DangerouslyHigh: 50}},
	Reduced:     {Name: "reduced", Unit: "kO", Band: safety.Band{DangerouslyLow: safety.NoBound, Low: safety.NoBound, High: 450, DangerouslyHigh: 550}},
	NH3:         {Name: "nh3", Unit: "kO", Band: safety.Band{DangerouslyLow: safety.NoBound, Low: safety.NoBound, High: 200, DangerouslyHigh: 300}},
	PM1:         {Name: "pm1", Unit: "ug/m3", Integer: true, Band: safety.Band{DangerouslyLow: safety.NoBound, Low: safety.NoBound, High: 50, DangerouslyHigh: 100}},
	PM25:        {Name: "pm25", Unit: "ug/m3", Integer: true, Band: safety.Band{DangerouslyLow: safety.NoBound, Low: safety.NoBound, High: 50, DangerouslyHigh: 100}},
	PM10:        {Name: "pm10", Unit: "ug/m3", Integer: true, Band: safety.Band{DangerouslyLow: safety.NoBound, Low: safety.NoBound, High: 50, DangerouslyHigh: 100}},
}

func (v Variable) String() string {
	if v < 0 || v >= NumVariables {
		return "unknown"
	}
	return Catalog[v].Name
}

// Reading holds one value per catalog variable, produced once per tick.
type Reading [NumVariables]float64

// Value returns the reading for a variable.
func (r Reading) Value(v Variable) float64 { return r[v] }

// Suite is the full sensor complement the tick loop samples. ReadAll
// acquires all eleven channels; a non-nil error means the whole tick's
// reading is unusable. Proximity is sampled separately at tick rate to
// drive display mode switching.
type Suite interface {
	ReadAll() (Reading, error)
	Proximity() (float64, error)
}
