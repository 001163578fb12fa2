// Package cmd wires the bibcheck command line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Kaan0029/jabref/cmd/check"
	"github.com/Kaan0029/jabref/cmd/version"
	"github.com/Kaan0029/jabref/internal/buildinfo"
	"github.com/Kaan0029/jabref/internal/conf"
	"github.com/Kaan0029/jabref/internal/errors"
	"github.com/Kaan0029/jabref/internal/logger"
)

// RootCommand creates and returns the root command
func RootCommand(build *buildinfo.Context) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "bibcheck",
		Short:         "Bibliography field consistency checker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: bibcheck.yaml in the working or config directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug output")
	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		logger.Global().Module("cli").Warn("failed to bind flag", logger.String("flag", "debug"), logger.Error(err))
	}

	versionCmd := version.Command(build)
	rootCmd.AddCommand(check.Command(), versionCmd)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The version command needs no configuration
		if cmd.Name() == versionCmd.Name() {
			return nil
		}
		return initialize(cmd, configFile, build)
	}

	return rootCmd
}

// initialize loads settings, then sets up logging and telemetry from them
func initialize(cmd *cobra.Command, configFile string, build *buildinfo.Context) error {
	settings, err := conf.Load(configFile)
	if err != nil {
		return err
	}

	cl, err := logger.NewCentralLogger(&settings.Logging, logger.WithConsoleWriter(cmd.ErrOrStderr()))
	if err != nil {
		return errors.New(err).
			Component("cli").
			Category(errors.CategoryConfiguration).
			Build()
	}
	logger.SetGlobal(cl)

	log := logger.Global().Module("cli")
	if settings.Telemetry.Enabled {
		if err := errors.InitSentry(settings.Telemetry.DSN, build.Release()); err != nil {
			// Running without telemetry is always acceptable
			log.Warn("telemetry disabled", logger.Error(err))
		} else {
			errors.SetTelemetryReporter(errors.NewSentryReporter(true))
			log.Debug("telemetry enabled")
		}
	}

	log.Debug("bibcheck starting",
		logger.String("version", build.GetVersion()),
		logger.String("command", cmd.Name()))
	return nil
}

// Shutdown flushes telemetry and closes log files. It must run after the
// command returns, whether it failed or not.
func Shutdown() error {
	if reporter := errors.GetTelemetryReporter(); reporter != nil && reporter.IsEnabled() {
		errors.FlushTelemetry(telemetryFlushTimeout)
	}
	return logger.Global().Close()
}
