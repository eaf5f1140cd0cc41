package sqlstore

import (
	"regexp"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const maxTracedQueryLength = 512

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// instrumentOptions configures the otelsql driver wrapper for one store.
func instrumentOptions(dialect Dialect, tp trace.TracerProvider) []otelsql.Option {
	opts := []otelsql.Option{
		otelsql.WithAttributes(attribute.String("db.system", string(dialect))),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	}
	if tp != nil {
		opts = append(opts, otelsql.WithTracerProvider(tp))
	}
	return opts
}

func formatQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
