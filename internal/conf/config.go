// Package conf loads bibcheck settings from defaults, an optional YAML
// config file, BIBCHECK_* environment variables and command line flags.
package conf

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/Kaan0029/jabref/internal/errors"
	"github.com/Kaan0029/jabref/internal/logger"
)

// CheckSettings controls a check run
type CheckSettings struct {
	Format         string `mapstructure:"format" yaml:"format"`                 // txt, csv or json
	Output         string `mapstructure:"output" yaml:"output"`                 // report path, empty for stdout
	Progress       bool   `mapstructure:"progress" yaml:"progress"`             // show a progress spinner on stderr
	FailOnFindings bool   `mapstructure:"failonfindings" yaml:"failonfindings"` // exit non-zero when inconsistencies are found
	Dedupe         bool   `mapstructure:"dedupe" yaml:"dedupe"`                 // load a file listed twice only once
}

// MetricsSettings controls the Prometheus textfile export
type MetricsSettings struct {
	Textfile string `mapstructure:"textfile" yaml:"textfile"` // path of the .prom file, empty disables export
}

// TelemetrySettings controls Sentry error reporting
type TelemetrySettings struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	DSN     string `mapstructure:"dsn" yaml:"dsn"`
}

// NotifySettings controls the summary sent after a check run
type NotifySettings struct {
	URLs           []string      `mapstructure:"urls" yaml:"urls"`                     // shoutrrr service URLs
	OnlyOnFindings bool          `mapstructure:"onlyonfindings" yaml:"onlyonfindings"` // stay silent when the library is consistent
	Title          string        `mapstructure:"title" yaml:"title"`
	Timeout        time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Settings contains all configuration options for bibcheck
type Settings struct {
	Debug     bool                 `mapstructure:"debug" yaml:"debug"`
	Logging   logger.LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Check     CheckSettings        `mapstructure:"check" yaml:"check"`
	Metrics   MetricsSettings      `mapstructure:"metrics" yaml:"metrics"`
	Telemetry TelemetrySettings    `mapstructure:"telemetry" yaml:"telemetry"`
	Notify    NotifySettings       `mapstructure:"notify" yaml:"notify"`
}

var (
	settingsInstance *Settings
	settingsMutex    sync.RWMutex
)

// Load reads the configuration into a new Settings instance and makes it
// the current one. configFile may name an explicit config file; when empty
// the default config paths are searched and a missing file is not an error.
func Load(configFile string) (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	if err := initViper(configFile); err != nil {
		return nil, err
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, errors.New(fmt.Errorf("error unmarshaling config into struct: %w", err)).
			Component("configuration").
			Category(errors.CategoryConfiguration).
			Build()
	}

	if settings.Debug {
		applyDebug(settings)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, errors.New(err).
			Component("configuration").
			Category(errors.CategoryValidation).
			Build()
	}

	if used := viper.ConfigFileUsed(); used != "" {
		GetLogger().Debug("configuration loaded", logger.String("path", used))
	}

	settingsInstance = settings
	return settings, nil
}

// initViper sets defaults, environment bindings and reads the config file.
func initViper(configFile string) error {
	setDefaultConfig()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := bindEnvVars(); err != nil {
		return errors.New(err).
			Component("configuration").
			Category(errors.CategoryConfiguration).
			Build()
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(ConfigName)
		viper.SetConfigType("yaml")
		for _, path := range GetDefaultConfigPaths() {
			viper.AddConfigPath(path)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &configFileNotFoundError) {
			// Running without a config file is the normal case
			return nil
		}
		return errors.New(fmt.Errorf("error reading config file: %w", err)).
			Component("configuration").
			Category(errors.CategoryConfiguration).
			FileContext(configFile, 0).
			Build()
	}

	return nil
}

// applyDebug lowers every log level to debug
func applyDebug(settings *Settings) {
	settings.Logging.DefaultLevel = "debug"
	if settings.Logging.Console != nil {
		settings.Logging.Console.Level = "debug"
	}
	if settings.Logging.FileOutput != nil {
		settings.Logging.FileOutput.Level = "debug"
	}
}

// GetSettings returns the current settings instance, nil before Load
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}
