// validate.go - settings validation

package conf

import (
	"fmt"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// ValidationError collects every problem found in a Settings instance
type ValidationError struct {
	Errors []string
}

// Error returns a string representation of the validation errors
func (ve ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %s", strings.Join(ve.Errors, "; "))
}

// ValidateSettings validates the entire Settings struct and reports all
// problems at once.
func ValidateSettings(settings *Settings) error {
	ve := ValidationError{}

	ve.Errors = append(ve.Errors, validateCheckSettings(&settings.Check)...)
	ve.Errors = append(ve.Errors, validateLoggingSettings(settings)...)
	ve.Errors = append(ve.Errors, validateMetricsSettings(&settings.Metrics)...)
	ve.Errors = append(ve.Errors, validateTelemetrySettings(&settings.Telemetry)...)
	ve.Errors = append(ve.Errors, validateNotifySettings(&settings.Notify)...)

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateCheckSettings(check *CheckSettings) []string {
	var errs []string

	check.Format = strings.ToLower(strings.TrimSpace(check.Format))
	if check.Format == "" {
		check.Format = DefaultFormat
	}
	if !slices.Contains(ValidFormats, check.Format) {
		errs = append(errs, fmt.Sprintf("check.format %q must be one of %s", check.Format, strings.Join(ValidFormats, ", ")))
	}

	return errs
}

func validateLoggingSettings(settings *Settings) []string {
	var errs []string
	logging := &settings.Logging

	if logging.DefaultLevel != "" && !isValidLogLevel(logging.DefaultLevel) {
		errs = append(errs, fmt.Sprintf("logging.default_level %q is not a valid log level", logging.DefaultLevel))
	}
	if logging.Console != nil && logging.Console.Level != "" && !isValidLogLevel(logging.Console.Level) {
		errs = append(errs, fmt.Sprintf("logging.console.level %q is not a valid log level", logging.Console.Level))
	}
	if logging.FileOutput != nil {
		if logging.FileOutput.Level != "" && !isValidLogLevel(logging.FileOutput.Level) {
			errs = append(errs, fmt.Sprintf("logging.file_output.level %q is not a valid log level", logging.FileOutput.Level))
		}
		if logging.FileOutput.Enabled && strings.TrimSpace(logging.FileOutput.Path) == "" {
			errs = append(errs, "logging.file_output.path is required when file logging is enabled")
		}
	}
	for module, level := range logging.ModuleLevels {
		if !isValidLogLevel(level) {
			errs = append(errs, fmt.Sprintf("logging.module_levels.%s %q is not a valid log level", module, level))
		}
	}
	if tz := logging.Timezone; tz != "" && !strings.EqualFold(tz, "local") {
		if _, err := time.LoadLocation(tz); err != nil {
			errs = append(errs, fmt.Sprintf("logging.timezone %q is not a known time zone", tz))
		}
	}

	slices.Sort(errs)
	return errs
}

func validateMetricsSettings(metrics *MetricsSettings) []string {
	if metrics.Textfile == "" {
		return nil
	}
	if filepath.Ext(metrics.Textfile) != MetricsTextfileExt {
		return []string{fmt.Sprintf("metrics.textfile %q must end in %s", metrics.Textfile, MetricsTextfileExt)}
	}
	return nil
}

func validateTelemetrySettings(telemetry *TelemetrySettings) []string {
	if !telemetry.Enabled {
		return nil
	}
	if strings.TrimSpace(telemetry.DSN) == "" {
		return []string{"telemetry.dsn is required when telemetry is enabled"}
	}
	if _, err := url.Parse(telemetry.DSN); err != nil {
		return []string{"telemetry.dsn is not a valid URL"}
	}
	return nil
}

func validateNotifySettings(notify *NotifySettings) []string {
	var errs []string

	// Environment variables arrive as one comma separated string
	var urls []string
	for _, raw := range notify.URLs {
		for part := range strings.SplitSeq(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				urls = append(urls, part)
			}
		}
	}
	notify.URLs = urls

	for _, u := range notify.URLs {
		if !strings.Contains(u, "://") {
			errs = append(errs, fmt.Sprintf("notify url %q has no scheme", redactURL(u)))
		}
	}
	if len(notify.URLs) > 0 && notify.Timeout <= 0 {
		errs = append(errs, "notify.timeout must be positive")
	}

	return errs
}

// redactURL keeps only the scheme of a service URL, the rest usually holds tokens
func redactURL(raw string) string {
	if scheme, _, ok := strings.Cut(raw, "://"); ok {
		return scheme + "://..."
	}
	return "..."
}
