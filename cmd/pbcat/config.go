package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/pbcat/internal/clip"
	"go.klb.dev/pbcat/internal/logging"
	"go.klb.dev/pbcat/internal/relay"
)

const defaultPollInterval = relay.DefaultPollInterval

// bindViper wires a command's flags into a viper instance with the standard
// config file search order and PBCAT_* env var prefix.
//
// Precedence (lowest → highest): defaults → config file → PBCAT_* env vars → flags
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("pbcat")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/pbcat/")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pbcat"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("PBCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// PBCAT_LOG is the historical name for the level variable.
	if err := v.BindEnv("log-level", "PBCAT_LOG_LEVEL", "PBCAT_LOG"); err != nil {
		return fmt.Errorf("binding env: %w", err)
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addLoggingFlags adds the standard logging flags to a command.
func addLoggingFlags(cmd *cobra.Command) {
	cmd.Flags().String("log-format", "auto", "log format: auto|text|json (always written to stderr)")
	cmd.Flags().String("log-level", "", "log level: trace|debug|info|warn|error (default: warn)")
}

// addConfigFlag adds the --config flag to a command.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "path to config file (overrides auto-discovery)")
}

// setupLogging reads logging flags from viper and configures slog. The bridge
// usually runs inside a tunnel, so it stays quiet unless asked.
func setupLogging(v *viper.Viper) {
	format := logging.ParseFormat(v.GetString("log-format"))
	level := logging.ParseLevel(v.GetString("log-level"), slog.LevelWarn)
	logging.Setup(format, level)
}

// options is the validated bridge configuration.
type options struct {
	pollInterval time.Duration
	mode         relay.Mode
	backend      clip.Kind
}

func loadOptions(v *viper.Viper) (options, error) {
	var o options

	o.pollInterval = v.GetDuration("poll-interval")
	if o.pollInterval <= 0 {
		return o, fmt.Errorf("poll-interval must be positive, got %q", v.GetString("poll-interval"))
	}

	var err error
	if o.mode, err = relay.ParseMode(v.GetString("mode")); err != nil {
		return o, err
	}
	if o.backend, err = clip.ParseKind(v.GetString("backend")); err != nil {
		return o, err
	}
	return o, nil
}

func runBridge(v *viper.Viper) error {
	setupLogging(v)

	o, err := loadOptions(v)
	if err != nil {
		return err
	}

	slog.Info("pbcat starting",
		"version", Version,
		"mode", o.mode,
		"backend", o.backend,
		"poll_interval", o.pollInterval,
	)

	return relay.Run(relay.Config{
		PollInterval: o.pollInterval,
		Mode:         o.mode,
		Open:         func() (clip.Clipboard, error) { return clip.Open(o.backend) },
		NewCounter:   clip.NewChangeCounter,
	}, os.Stdin, os.Stdout)
}
