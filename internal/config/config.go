// Package config loads the node configuration from an optional YAML
// file plus ENVIROMON_* environment overrides. Every key has a default
// matching the field deployment, so a bare binary runs without any
// config at all.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full node configuration.
type Config struct {
	BrokerURL    string `mapstructure:"broker_url"`
	Topic        string `mapstructure:"topic"`
	HistoryTopic string `mapstructure:"history_topic"`
	KeepAlive    uint16 `mapstructure:"keepalive_seconds"`

	TickPeriod      time.Duration `mapstructure:"tick_period"`
	PublishInterval time.Duration `mapstructure:"publish_interval"`
	HistoryInterval time.Duration `mapstructure:"history_interval"`

	DBPath    string        `mapstructure:"db_path"`
	Retention time.Duration `mapstructure:"retention"`

	ProximityThreshold float64       `mapstructure:"proximity_threshold"`
	ProximityDebounce  time.Duration `mapstructure:"proximity_debounce"`

	NoiseThreshold float64 `mapstructure:"noise_threshold"`
	NightReduction float64 `mapstructure:"night_reduction"`
	NightStart     int     `mapstructure:"night_start"`
	NightEnd       int     `mapstructure:"night_end"`
	NoiseEventCap  int     `mapstructure:"noise_event_cap"`

	ExtIPInterval time.Duration `mapstructure:"extip_interval"`
	SplashSeconds int           `mapstructure:"splash_seconds"`
	DashboardURL  string        `mapstructure:"dashboard_url"`
	FramePath     string        `mapstructure:"frame_path"`

	MetricsAddr string `mapstructure:"metrics_addr"`
	SimSeed     int64  `mapstructure:"sim_seed"`
	LogLevel    string `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("broker_url", "tcp://broker.hivemq.com:1883")
	v.SetDefault("topic", "farcom/enviro")
	v.SetDefault("history_topic", "farcom/enviro/history")
	v.SetDefault("keepalive_seconds", 60)

	v.SetDefault("tick_period", 150*time.Millisecond)
	v.SetDefault("publish_interval", 2*time.Second)
	v.SetDefault("history_interval", 900*time.Second)

	v.SetDefault("db_path", "enviro_history.db")
	v.SetDefault("retention", 24*time.Hour)

	v.SetDefault("proximity_threshold", 800.0)
	v.SetDefault("proximity_debounce", 200*time.Millisecond)

	v.SetDefault("noise_threshold", 65.0)
	v.SetDefault("night_reduction", 10.0)
	v.SetDefault("night_start", 22)
	v.SetDefault("night_end", 7)
	v.SetDefault("noise_event_cap", 100)

	v.SetDefault("extip_interval", 600*time.Second)
	v.SetDefault("splash_seconds", 4)
	v.SetDefault("dashboard_url", "")
	v.SetDefault("frame_path", "")

	v.SetDefault("metrics_addr", ":9102")
	v.SetDefault("sim_seed", 0)
	v.SetDefault("log_level", "info")
}

// Load reads the config file at path if non-empty, otherwise probes the
// usual locations, and applies ENVIROMON_* environment overrides on top.
// A missing file is not an error; every key falls back to its default.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("enviromon")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("enviromon")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/enviromon")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
