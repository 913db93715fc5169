// Package dburl normalizes postgres connection strings shared by the API
// and the migration CLI.
package dburl

import (
	"net/url"
	"strings"
)

// WithApplicationName sets application_name on a URL-style connection
// string unless the caller already set one. Keyword/value DSNs are
// returned unchanged.
func WithApplicationName(raw, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("application_name") != "" {
		return raw
	}
	query.Set("application_name", name)
	parsed.RawQuery = query.Encode()

	return parsed.String()
}

// Name extracts the database name from either a URL or a keyword/value DSN.
func Name(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		value, ok := strings.CutPrefix(token, "dbname=")
		if !ok {
			continue
		}
		if value = strings.Trim(strings.TrimSpace(value), `"'`); value != "" {
			return value
		}
	}

	return ""
}

// Redact hides the password of a URL-style connection string for logs.
func Redact(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return "<dsn>"
	}

	return parsed.Redacted()
}
