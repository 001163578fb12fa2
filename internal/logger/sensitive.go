package logger

import (
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveDataPatterns match credentials embedded in free text
var sensitiveDataPatterns = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	// Sentry style DSNs carry the public key in the user part of the URL
	{regexp.MustCompile(`(https?://)[^:@/\s]+(:[^@/\s]*)?@`), "${1}" + redacted + "@"},
	{regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9\-._~+/]+=*`), "${1}" + redacted},
	{regexp.MustCompile(`(?i)((?:api[_-]?key|token|secret|passw(?:or)?d)[\s:=]+)[^;,\s]{5,}`), "${1}" + redacted},
}

// sensitiveKeys are field keys whose values are never written verbatim.
// Plain "key" is deliberately absent; citation keys are logged freely.
var sensitiveKeys = []string{
	"password", "passwd", "secret", "token", "dsn", "credential", "authorization", "api_key", "apikey",
}

// RedactSensitiveData replaces credentials found in input with a placeholder.
func RedactSensitiveData(input string) string {
	if input == "" {
		return input
	}
	for _, p := range sensitiveDataPatterns {
		input = p.pattern.ReplaceAllString(input, p.replacement)
	}
	return input
}

// isSensitiveKey reports whether a field key names a secret
func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, k := range sensitiveKeys {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// redactField hides sensitive string values and scrubs credentials from the rest
func redactField(f Field) Field {
	s, ok := f.Value.(string)
	if !ok || s == "" {
		return f
	}
	if isSensitiveKey(f.Key) {
		return Field{Key: f.Key, Value: redacted}
	}
	return Field{Key: f.Key, Value: RedactSensitiveData(s)}
}
