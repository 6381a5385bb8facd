package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, in lower case, the HTTP headers whose values are
// never logged. The request logging middleware reads it too.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

var (
	// Seller contact data and store credentials are masked wherever they
	// appear as attribute keys.
	sensitiveFields   = []string{"password", "secret", "token", "email", "dsn"}
	sensitivePrefixes = []string{"secret_", "api_key"}

	// Values that slip through under an innocent key.
	sensitiveValues = []*regexp.Regexp{
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`), // JWT
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
		regexp.MustCompile(`(?i)(password=\S+|://[^:/\s]+:[^@\s]+@)`), // DSN credentials
	}
)

func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
