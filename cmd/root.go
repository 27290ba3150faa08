// Package cmd holds the enviromon CLI.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Version is the build version shown on the info screen and by the
// version subcommand. Overridden at link time via -ldflags.
var Version = "v4+LCD v8"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "enviromon",
	Short:        "Enviro+ telemetry node: sensors to MQTT, SQLite and a 160x80 LCD",
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./enviromon.yaml or /etc/enviromon/enviromon.yaml)")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
