package sqlstore

import (
	"net/url"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Dialect selects the SQL driver and migration set.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// parseDBURL maps a DB_URL value to a dialect and a driver DSN.
// Accepted forms: sqlite://path, file:path, a bare file path, postgres://...
func parseDBURL(raw string, disablePreparedBinaryResult bool) (Dialect, string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", "", crerr.New("database url is required")
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, normalizePostgresURL(trimmed, disablePreparedBinaryResult), nil
	case strings.HasPrefix(lower, "sqlite://"):
		return sqliteDSN(trimmed[len("sqlite://"):])
	case strings.HasPrefix(lower, "file:"):
		return sqliteDSN(trimmed[len("file:"):])
	case strings.Contains(trimmed, "://"):
		return "", "", crerr.Newf("unsupported database url scheme in %q", trimmed)
	default:
		return sqliteDSN(trimmed)
	}
}

func sqliteDSN(rest string) (Dialect, string, error) {
	path, query, _ := strings.Cut(rest, "?")
	path = strings.TrimSpace(path)
	if path == "" {
		return "", "", crerr.New("sqlite database path is required")
	}
	if path == ":memory:" {
		// Each pooled connection would see its own empty database.
		return "", "", crerr.New("sqlite in-memory databases are not supported; use a file path")
	}

	dsn := path + "?" + sqlitePragmas
	if strings.TrimSpace(query) != "" {
		dsn += "&" + query
	}
	return DialectSQLite, dsn, nil
}

func normalizePostgresURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func (d Dialect) driverName() string {
	switch d {
	case DialectPostgres:
		return "postgres"
	default:
		return "sqlite"
	}
}
