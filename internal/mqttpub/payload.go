// Package mqttpub publishes sensor payloads over MQTT: a non-retained
// live topic on the publish cadence and a retained snapshot topic for
// late subscribers.
package mqttpub

import (
	"math"
	"time"

	"github.com/luki/enviromon/internal/sensor"
)

// Payload is the live JSON document published every cadence. Physical
// quantities carry one decimal place; particulate counts are integers.
type Payload struct {
	Noise       float64 `json:"noise"`
	Temperature float64 `json:"temperature"`
	Pressure    float64 `json:"pressure"`
	Humidity    float64 `json:"humidity"`
	Light       float64 `json:"light"`
	Oxidised    float64 `json:"oxidised"`
	Reduced     float64 `json:"reduced"`
	NH3         float64 `json:"nh3"`
	PM1         int     `json:"pm1"`
	PM25        int     `json:"pm25"`
	PM10        int     `json:"pm10"`

	MQTTConnected bool  `json:"mqtt_connected"`
	UptimeStart   int64 `json:"uptime_start"`
}

// Snapshot is the retained history document: the live payload plus a
// timestamp and the current stored row count.
type Snapshot struct {
	Timestamp string  `json:"timestamp"`
	Snapshot  Payload `json:"snapshot"`
	Rows      int64   `json:"rows"`
}

// NewPayload builds the wire payload from a reading.
func NewPayload(r sensor.Reading, connected bool, uptimeStart int64) Payload {
	return Payload{
		Noise:         round1(r[sensor.Noise]),
		Temperature:   round1(r[sensor.Temperature]),
		Pressure:      round1(r[sensor.Pressure]),
		Humidity:      round1(r[sensor.Humidity]),
		Light:         round1(r[sensor.Light]),
		Oxidised:      round1(r[sensor.Oxidised]),
		Reduced:       round1(r[sensor.Reduced]),
		NH3:           round1(r[sensor.NH3]),
		PM1:           int(r[sensor.PM1]),
		PM25:          int(r[sensor.PM25]),
		PM10:          int(r[sensor.PM10]),
		MQTTConnected: connected,
		UptimeStart:   uptimeStart,
	}
}

// NewSnapshot wraps a payload for the retained history topic.
func NewSnapshot(p Payload, now time.Time, rows int64) Snapshot {
	return Snapshot{
		Timestamp: now.Format(time.RFC3339),
		Snapshot:  p,
		Rows:      rows,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
