package conf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kaan0029/jabref/internal/logger"
)

func validSettings() *Settings {
	return &Settings{
		Logging: logger.LoggingConfig{
			DefaultLevel: "info",
			Console:      &logger.ConsoleOutput{Enabled: true, Level: "warn"},
			FileOutput:   &logger.FileOutput{Path: "logs/bibcheck.log", Level: "info"},
		},
		Check:  CheckSettings{Format: "txt"},
		Notify: NotifySettings{Timeout: time.Second},
	}
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{name: "valid", mutate: func(*Settings) {}},
		{name: "empty format falls back", mutate: func(s *Settings) { s.Check.Format = "" }},
		{name: "unknown format", mutate: func(s *Settings) { s.Check.Format = "xml" }, wantErr: "check.format"},
		{name: "warning alias", mutate: func(s *Settings) { s.Logging.DefaultLevel = "WARNING" }},
		{name: "bad default level", mutate: func(s *Settings) { s.Logging.DefaultLevel = "loud" }, wantErr: "logging.default_level"},
		{name: "bad console level", mutate: func(s *Settings) { s.Logging.Console.Level = "loud" }, wantErr: "logging.console.level"},
		{name: "bad module level", mutate: func(s *Settings) {
			s.Logging.ModuleLevels = map[string]string{"library": "loud"}
		}, wantErr: "logging.module_levels.library"},
		{name: "file logging without path", mutate: func(s *Settings) {
			s.Logging.FileOutput.Enabled = true
			s.Logging.FileOutput.Path = " "
		}, wantErr: "logging.file_output.path"},
		{name: "unknown timezone", mutate: func(s *Settings) { s.Logging.Timezone = "Mars/Olympus" }, wantErr: "logging.timezone"},
		{name: "utc timezone", mutate: func(s *Settings) { s.Logging.Timezone = "UTC" }},
		{name: "textfile extension", mutate: func(s *Settings) { s.Metrics.Textfile = "out/bibcheck.txt" }, wantErr: "metrics.textfile"},
		{name: "textfile ok", mutate: func(s *Settings) { s.Metrics.Textfile = "out/bibcheck.prom" }},
		{name: "telemetry without dsn", mutate: func(s *Settings) { s.Telemetry.Enabled = true }, wantErr: "telemetry.dsn"},
		{name: "notify url without scheme", mutate: func(s *Settings) { s.Notify.URLs = []string{"localhost/hook"} }, wantErr: "no scheme"},
		{name: "notify zero timeout", mutate: func(s *Settings) {
			s.Notify.URLs = []string{"generic://localhost/hook"}
			s.Notify.Timeout = 0
		}, wantErr: "notify.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			settings := validSettings()
			tt.mutate(settings)

			err := ValidateSettings(settings)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSettingsCollectsAllErrors(t *testing.T) {
	t.Parallel()

	settings := validSettings()
	settings.Check.Format = "xml"
	settings.Telemetry.Enabled = true

	err := ValidateSettings(settings)
	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
}

func TestValidateSettingsNormalizes(t *testing.T) {
	t.Parallel()

	settings := validSettings()
	settings.Check.Format = " JSON "
	settings.Notify.URLs = []string{"generic://a/x,generic://b/y", " "}

	require.NoError(t, ValidateSettings(settings))
	assert.Equal(t, "json", settings.Check.Format)
	assert.Equal(t, []string{"generic://a/x", "generic://b/y"}, settings.Notify.URLs)
}

func TestNotifyURLsAreRedactedInErrors(t *testing.T) {
	t.Parallel()

	settings := validSettings()
	settings.Notify.URLs = []string{"token-abc@host"}
	err := ValidateSettings(settings)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "token-abc")
}
