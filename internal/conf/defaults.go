package conf

import (
	"time"

	"github.com/spf13/viper"

	"github.com/Kaan0029/jabref/internal/logger"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("logging.default_level", logger.DefaultLogLevel)
	viper.SetDefault("logging.timezone", "Local")
	viper.SetDefault("logging.console.enabled", logger.DefaultConsoleEnabled)
	viper.SetDefault("logging.console.level", logger.DefaultConsoleLevel)
	viper.SetDefault("logging.file_output.enabled", logger.DefaultFileEnabled)
	viper.SetDefault("logging.file_output.path", logger.DefaultLogPath)
	viper.SetDefault("logging.file_output.level", logger.DefaultLogLevel)
	viper.SetDefault("logging.module_levels", map[string]string{})

	viper.SetDefault("check.format", DefaultFormat)
	viper.SetDefault("check.output", "")
	viper.SetDefault("check.progress", true)
	viper.SetDefault("check.failonfindings", false)
	viper.SetDefault("check.dedupe", true)

	viper.SetDefault("metrics.textfile", "")

	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.dsn", "")

	viper.SetDefault("notify.urls", []string{})
	viper.SetDefault("notify.onlyonfindings", true)
	viper.SetDefault("notify.title", "bibcheck report")
	viper.SetDefault("notify.timeout", 10*time.Second)
}
