package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values are never
// logged. The HTTP middleware shares this set when it dumps request headers.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// dsnPasswordPattern matches key/value connection strings such as
	// "host=db user=todo password=s3cret".
	dsnPasswordPattern = regexp.MustCompile(`(?i)password\s*=\s*\S+`)

	// dsnUserinfoPattern matches URL connection strings carrying credentials,
	// e.g. "postgres://todo:s3cret@db:5432/todo".
	dsnUserinfoPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.\-]*://[^/\s:@]+:[^/\s@]+@`)
)

// newRedactAttr returns a masq ReplaceAttr function that hides credentials by
// field name and by value shape.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+8)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("dsn"),
		masq.WithFieldPrefix("secret_"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(dsnPasswordPattern),
		masq.WithRegex(dsnUserinfoPattern),
	)

	return masq.New(opts...)
}
