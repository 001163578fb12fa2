// env.go - environment variable bindings for bibcheck
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// envBinding holds metadata for an environment variable binding
type envBinding struct {
	ConfigKey string             // Viper config key
	EnvVar    string             // Environment variable name
	Validate  func(string) error // Optional validation function
}

// getEnvBindings returns the short environment variable aliases. Every key
// is also reachable through AutomaticEnv as BIBCHECK_<SECTION>_<KEY>.
func getEnvBindings() []envBinding {
	return []envBinding{
		{"debug", "BIBCHECK_DEBUG", validateEnvBool},
		{"logging.default_level", "BIBCHECK_LOG_LEVEL", validateEnvLogLevel},
		{"logging.file_output.path", "BIBCHECK_LOG_FILE", validateEnvPath},

		{"check.format", "BIBCHECK_FORMAT", validateEnvFormat},
		{"check.output", "BIBCHECK_OUTPUT", validateEnvPath},
		{"check.failonfindings", "BIBCHECK_FAIL_ON_FINDINGS", validateEnvBool},

		{"metrics.textfile", "BIBCHECK_METRICS_TEXTFILE", validateEnvPath},

		{"telemetry.enabled", "BIBCHECK_TELEMETRY", validateEnvBool},
		{"telemetry.dsn", "BIBCHECK_SENTRY_DSN", nil},

		{"notify.urls", "BIBCHECK_NOTIFY_URLS", nil},
	}
}

// bindEnvVars binds the aliases and validates any values already set
func bindEnvVars() error {
	var warnings []string

	for _, binding := range getEnvBindings() {
		if err := viper.BindEnv(binding.ConfigKey, binding.EnvVar); err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to bind %s: %v", binding.EnvVar, err))
			continue
		}

		if binding.Validate == nil {
			continue
		}
		if envValue := os.Getenv(binding.EnvVar); envValue != "" {
			if err := binding.Validate(envValue); err != nil {
				warnings = append(warnings, fmt.Sprintf("invalid %s value '%s': %v", binding.EnvVar, envValue, err))
			}
		}
	}

	if len(warnings) > 0 {
		return fmt.Errorf("environment variable issues:\n  - %s", strings.Join(warnings, "\n  - "))
	}

	return nil
}

func validateEnvBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("must be true or false")
	}
	return nil
}

func validateEnvFormat(value string) error {
	if !slices.Contains(ValidFormats, strings.ToLower(value)) {
		return fmt.Errorf("must be one of %s", strings.Join(ValidFormats, ", "))
	}
	return nil
}

func validateEnvLogLevel(value string) error {
	if !isValidLogLevel(value) {
		return fmt.Errorf("must be one of %s", strings.Join(ValidLogLevels, ", "))
	}
	return nil
}

// validateEnvPath rejects paths that try to climb out of their base directory
func validateEnvPath(value string) error {
	if slices.Contains(strings.Split(filepath.ToSlash(value), "/"), "..") {
		return fmt.Errorf("path traversal not allowed")
	}
	return nil
}
