package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/luki/enviromon/internal/config"
	"github.com/luki/enviromon/internal/display"
	"github.com/luki/enviromon/internal/metrics"
	"github.com/luki/enviromon/internal/mqttpub"
	"github.com/luki/enviromon/internal/noise"
	"github.com/luki/enviromon/internal/scheduler"
	"github.com/luki/enviromon/internal/sensor"
	"github.com/luki/enviromon/internal/store"
	"github.com/luki/enviromon/internal/sysinfo"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the telemetry node until interrupted",
	RunE:  runNode,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runNode(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)
	slog.SetDefault(log)
	log.Info("enviromon starting",
		"version", Version,
		"device_id", sysinfo.DeviceID(),
		"broker", cfg.BrokerURL,
		"topic", cfg.Topic)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(cfg.DBPath, cfg.Retention)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	metrics.Serve(cfg.MetricsAddr, log)

	pub, err := mqttpub.Connect(ctx, mqttpub.Options{
		BrokerURL:    cfg.BrokerURL,
		ClientID:     sysinfo.DeviceID(),
		Topic:        cfg.Topic,
		HistoryTopic: cfg.HistoryTopic,
		KeepAlive:    cfg.KeepAlive,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}

	var dev display.Device = display.Nop{}
	if cfg.FramePath != "" {
		dev = display.FileDevice{Path: cfg.FramePath}
		log.Info("rendering frames to file", "path", cfg.FramePath)
	}
	screens := display.NewScreens(dev, cfg.DashboardURL, Version)

	// Splash holds before the loop takes over the panel.
	if err := screens.Splash(); err != nil {
		log.Warn("splash render failed", "error", err)
	}
	time.Sleep(time.Duration(cfg.SplashSeconds) * time.Second)

	extIP := sysinfo.NewExtIP(cfg.ExtIPInterval, log)
	extIP.Refresh(ctx)
	extIP.Start(ctx)

	seed := cfg.SimSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sched := scheduler.New(scheduler.Config{
		Suite:      sensor.NewSim(seed),
		Controller: display.NewController(cfg.ProximityThreshold, cfg.ProximityDebounce, log),
		Screens:    screens,
		Transport:  pub,
		Storage:    st,
		Host:       sysinfo.NewHost(extIP),
		Watch: noise.Watch{
			Base:       cfg.NoiseThreshold,
			Reduction:  cfg.NightReduction,
			NightStart: cfg.NightStart,
			NightEnd:   cfg.NightEnd,
		},
		EventCap:        cfg.NoiseEventCap,
		TickPeriod:      cfg.TickPeriod,
		PublishInterval: cfg.PublishInterval,
		HistoryInterval: cfg.HistoryInterval,
		StartTime:       time.Now(),
		Logger:          log,
	})

	return sched.Run(ctx)
}
