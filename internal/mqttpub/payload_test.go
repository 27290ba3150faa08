package mqttpub

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/luki/enviromon/internal/sensor"
)

func TestNewPayloadRounding(t *testing.T) {
	var r sensor.Reading
	r[sensor.Temperature] = 21.5678
	r[sensor.Noise] = 48.04
	r[sensor.PM25] = 12.9

	p := NewPayload(r, true, 1700000000)

	if p.Temperature != 21.6 {
		t.Errorf("temperature: got %v, want 21.6", p.Temperature)
	}
	if p.Noise != 48.0 {
		t.Errorf("noise: got %v, want 48.0", p.Noise)
	}
	// Particulates truncate to whole counts.
	if p.PM25 != 12 {
		t.Errorf("pm25: got %v, want 12", p.PM25)
	}
	if !p.MQTTConnected || p.UptimeStart != 1700000000 {
		t.Errorf("metadata: got %+v", p)
	}
}

func TestPayloadFieldNames(t *testing.T) {
	body, err := json.Marshal(Payload{})
	if err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{
		`"noise"`, `"temperature"`, `"pressure"`, `"humidity"`, `"light"`,
		`"oxidised"`, `"reduced"`, `"nh3"`, `"pm1"`, `"pm25"`, `"pm10"`,
		`"mqtt_connected"`, `"uptime_start"`,
	} {
		if !strings.Contains(string(body), field) {
			t.Errorf("payload JSON missing %s: %s", field, body)
		}
	}
}

func TestNewSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	snap := NewSnapshot(Payload{Temperature: 20.5}, now, 43200)

	if snap.Timestamp != "2026-03-01T12:30:00Z" {
		t.Errorf("timestamp: got %q", snap.Timestamp)
	}
	if snap.Rows != 43200 {
		t.Errorf("rows: got %d", snap.Rows)
	}

	body, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"timestamp"`, `"snapshot"`, `"rows"`} {
		if !strings.Contains(string(body), field) {
			t.Errorf("snapshot JSON missing %s: %s", field, body)
		}
	}
}
