// Package metrics exposes the node's Prometheus instrumentation.
package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var Publishes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "enviromon_publishes_total",
	Help: "Live MQTT payloads published",
})

var PublishErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "enviromon_publish_errors_total",
	Help: "Failed MQTT publish attempts",
})

var SensorReadErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "enviromon_sensor_read_errors_total",
	Help: "Ticks skipped because the sensor suite read failed",
})

var NoiseEvents = promauto.NewCounter(prometheus.CounterOpts{
	Name: "enviromon_noise_events_total",
	Help: "Acoustic threshold events detected",
})

var ModeSwitches = promauto.NewCounter(prometheus.CounterOpts{
	Name: "enviromon_mode_switches_total",
	Help: "Proximity-triggered display mode transitions",
})

var TickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "enviromon_tick_duration_seconds",
	Help:    "Wall time spent in one scheduler tick",
	Buckets: []float64{0.01, 0.05, 0.1, 0.15, 0.25, 0.5, 1},
})

var DBRows = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "enviromon_db_rows",
	Help: "Rows currently retained in the sample store",
})

// Serve exposes /metrics on addr in a background goroutine.
func Serve(addr string, log *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		log.Info("metrics endpoint listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Warn("metrics server stopped", "error", err)
		}
	}()
}
