// Package scheduler runs the multi-rate orchestration loop: a single
// cooperative tick loop sampling the sensor suite, updating display and
// history state, and firing the publish, persist and retained-snapshot
// side effects on their own wall-clock cadences.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/luki/enviromon/internal/display"
	"github.com/luki/enviromon/internal/history"
	"github.com/luki/enviromon/internal/metrics"
	"github.com/luki/enviromon/internal/mqttpub"
	"github.com/luki/enviromon/internal/noise"
	"github.com/luki/enviromon/internal/sensor"
	"github.com/luki/enviromon/internal/sysinfo"
)

// Transport publishes payloads to the broker.
type Transport interface {
	Publish(ctx context.Context, p mqttpub.Payload) error
	PublishHistory(ctx context.Context, s mqttpub.Snapshot) error
	Connected() bool
	Disconnect(ctx context.Context) error
}

// Storage persists readings with retention pruning.
type Storage interface {
	Append(t time.Time, r sensor.Reading) error
	Count() (int64, error)
}

// Renderer draws the screen for the current display mode.
type Renderer interface {
	Bars(name, unit string, integer bool, window []float64, latest float64) error
	Info(display.InfoStatus) error
	Logo() error
	Health(display.HealthStats) error
	Stopped() error
}

// HostInfo supplies the OS-level stats the info and health screens show.
type HostInfo interface {
	LocalIP() string
	ExternalIP() string
	SSID(now time.Time) string
	CPUTemp() float64
	RAM() (used, total int)
	DiskPercent() int
	SSHListening() bool
}

// Config wires the scheduler's collaborators and timing.
type Config struct {
	Suite      sensor.Suite
	Controller *display.Controller
	Screens    Renderer
	Transport  Transport
	Storage    Storage
	Host       HostInfo

	Watch      noise.Watch
	EventCap   int // default 100
	WindowSize int // default display.NumBars

	TickPeriod      time.Duration
	PublishInterval time.Duration
	HistoryInterval time.Duration

	StartTime time.Time
	Clock     Clock
	Logger    *slog.Logger
}

// Scheduler owns all loop state: the rolling windows, the event log and
// the cadence timestamps. Nothing here is shared with other goroutines;
// background activities communicate only through the transport's atomic
// flag and the host's external-IP cell.
type Scheduler struct {
	cfg    Config
	clock  Clock
	log    *slog.Logger
	series [sensor.NumVariables]*history.Series
	events *noise.EventLog

	uptimeStart int64
	lastPublish time.Time
	lastHistory time.Time
	publishes   int
	ticks       int
}

// New creates a scheduler. Zero-value timing fields must be filled by
// the caller; Clock and Logger default to the real clock and slog's
// default logger.
func New(cfg Config) *Scheduler {
	if cfg.Clock == nil {
		cfg.Clock = RealClock
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.EventCap == 0 {
		cfg.EventCap = 100
	}
	if cfg.WindowSize == 0 {
		cfg.WindowSize = display.NumBars
	}

	s := &Scheduler{
		cfg:         cfg,
		clock:       cfg.Clock,
		log:         cfg.Logger,
		events:      noise.NewEventLog(cfg.Watch, cfg.EventCap),
		uptimeStart: cfg.StartTime.Unix(),
	}
	for v := range s.series {
		s.series[v] = history.NewSeries(cfg.WindowSize)
	}
	return s
}

// Events exposes the retained noise events.
func (s *Scheduler) Events() *noise.EventLog { return s.events }

// Window returns the rolling window of one variable, oldest first.
func (s *Scheduler) Window(v sensor.Variable) []float64 { return s.series[v].Window() }

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() int { return s.ticks }

// Run drives the tick loop until ctx is cancelled, then performs the
// best-effort shutdown sequence. Each tick sleeps only the remainder of
// its own target period, so a slow tick does not push later ticks off
// schedule cumulatively.
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.Info("tick loop starting",
		"tick", s.cfg.TickPeriod,
		"publish_interval", s.cfg.PublishInterval,
		"history_interval", s.cfg.HistoryInterval)

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return nil
		default:
		}

		start := s.clock.Now()
		s.tick(ctx, start)
		s.ticks++

		elapsed := s.clock.Now().Sub(start)
		metrics.TickDuration.Observe(elapsed.Seconds())
		if rest := s.cfg.TickPeriod - elapsed; rest > 0 {
			s.clock.Sleep(rest)
		}
	}
}

// tick runs the per-tick phases. Any phase failure is logged and
// swallowed; only a failed suite read skips the remainder of the tick.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	prox, err := s.cfg.Suite.Proximity()
	if err != nil {
		s.log.Warn("proximity read failed", "error", err)
		prox = 0
	} else if s.cfg.Controller.HandleProximity(prox, now) {
		metrics.ModeSwitches.Inc()
	}

	reading, err := s.cfg.Suite.ReadAll()
	if err != nil {
		metrics.SensorReadErrors.Inc()
		s.log.Warn("sensor read failed, skipping tick", "error", err)
		return
	}
	if prox >= sensor.LightGateProximity {
		reading[sensor.Light] = 1.0
	}

	mode := s.cfg.Controller.Mode()
	if mode < display.NumSensorModes {
		s.series[mode].Push(reading[sensor.Variable(mode)])
	}

	if err := s.render(mode, now, reading); err != nil {
		s.log.Warn("render failed", "mode", mode, "error", err)
	}

	if ev, ok := s.events.Observe(reading[sensor.Noise], now); ok {
		metrics.NoiseEvents.Inc()
		s.log.Info("noise event", "db", ev.DB, "type", ev.Type)
	}

	if s.lastPublish.IsZero() || now.Sub(s.lastPublish) >= s.cfg.PublishInterval {
		s.publish(ctx, now, reading)
	}
}

// publish fires the publish-cadence side effects: live payload, durable
// append+prune, and, when due, the retained history snapshot. The
// snapshot guard is only evaluated here, so snapshots always coincide
// with a publish boundary.
func (s *Scheduler) publish(ctx context.Context, now time.Time, reading sensor.Reading) {
	payload := mqttpub.NewPayload(reading, s.cfg.Transport.Connected(), s.uptimeStart)

	if err := s.cfg.Transport.Publish(ctx, payload); err != nil {
		metrics.PublishErrors.Inc()
		s.log.Warn("publish failed", "error", err)
	} else {
		metrics.Publishes.Inc()
	}

	if err := s.cfg.Storage.Append(now, reading); err != nil {
		s.log.Warn("store append failed", "error", err)
	}

	if s.lastHistory.IsZero() || now.Sub(s.lastHistory) >= s.cfg.HistoryInterval {
		rows, err := s.cfg.Storage.Count()
		if err != nil {
			s.log.Warn("row count failed", "error", err)
		} else {
			metrics.DBRows.Set(float64(rows))
		}

		snap := mqttpub.NewSnapshot(payload, now, rows)
		if err := s.cfg.Transport.PublishHistory(ctx, snap); err != nil {
			s.log.Warn("history publish failed", "error", err)
		} else {
			s.log.Info("history snapshot published", "rows", rows)
		}
		s.lastHistory = now
	}

	s.lastPublish = now
	s.publishes++
	if s.publishes%30 == 0 {
		s.log.Info("status",
			"mode", s.cfg.Controller.Mode(),
			"mqtt", s.cfg.Transport.Connected(),
			"noise", payload.Noise,
			"temperature", payload.Temperature,
			"pm25", payload.PM25,
			"publishes", s.publishes)
	}
}

func (s *Scheduler) render(mode int, now time.Time, reading sensor.Reading) error {
	switch {
	case mode < display.NumSensorModes:
		v := sensor.Variable(mode)
		info := sensor.Catalog[v]
		return s.cfg.Screens.Bars(info.Name, info.Unit, info.Integer, s.series[v].Window(), reading[v])

	case mode == display.ModeInfo:
		return s.cfg.Screens.Info(display.InfoStatus{
			Now:    now,
			WiFiOK: s.cfg.Host.LocalIP() != sysinfo.UnknownIP,
			MQTTOK: s.cfg.Transport.Connected(),
			SSHOK:  s.cfg.Host.SSHListening(),
			Uptime: sysinfo.FormatUptime(s.cfg.StartTime, now),
		})

	case mode == display.ModeLogo:
		return s.cfg.Screens.Logo()

	default:
		used, total := s.cfg.Host.RAM()
		return s.cfg.Screens.Health(display.HealthStats{
			LAN:      s.cfg.Host.LocalIP(),
			WAN:      s.cfg.Host.ExternalIP(),
			SSID:     s.cfg.Host.SSID(now),
			CPUTemp:  s.cfg.Host.CPUTemp(),
			RAMUsed:  used,
			RAMTotal: total,
			DiskPct:  s.cfg.Host.DiskPercent(),
			Uptime:   sysinfo.FormatUptime(s.cfg.StartTime, now),
		})
	}
}

// shutdown disconnects the transport and paints the stopped screen,
// swallowing failures: nothing here may prevent process exit.
func (s *Scheduler) shutdown() {
	s.log.Info("tick loop stopping", "ticks", s.ticks, "publishes", s.publishes)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := s.cfg.Transport.Disconnect(ctx); err != nil {
		s.log.Warn("transport disconnect failed", "error", err)
	}
	if err := s.cfg.Screens.Stopped(); err != nil {
		s.log.Warn("stopped screen render failed", "error", err)
	}
}
