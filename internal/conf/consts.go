package conf

const (
	// AppName is used for config directories
	AppName = "bibcheck"

	// ConfigName is the config file base name without extension
	ConfigName = "bibcheck"

	// EnvPrefix prefixes every environment variable, e.g. BIBCHECK_CHECK_FORMAT
	EnvPrefix = "BIBCHECK"

	// DefaultFormat is the report format used when none is configured
	DefaultFormat = "txt"

	// MetricsTextfileExt is required by the node exporter textfile collector
	MetricsTextfileExt = ".prom"
)

// ValidFormats are the accepted report formats
var ValidFormats = []string{"txt", "csv", "json"}

// ValidLogLevels are the accepted log level names
var ValidLogLevels = []string{"trace", "debug", "info", "warn", "error"}
