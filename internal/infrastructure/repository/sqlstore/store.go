// Package sqlstore persists series data in a relational database through sqlx.
// SQLite (modernc) backs the default single-file store; postgres URLs use lib/pq.
package sqlstore

import (
	"context"
	"database/sql"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite"

	"github.com/riskibarqy/series-points/internal/platform/logging"
)

func init() {
	sqlx.BindDriver(string(DialectSQLite), sqlx.QUESTION)
}

type Options struct {
	URL                         string
	MaxOpenConns                int
	DisablePreparedBinaryResult bool
	Logger                      *logging.Logger
	// TracerProvider overrides the global provider for statement spans.
	TracerProvider trace.TracerProvider
}

// Store owns the database handle shared by every repository.
type Store struct {
	db      *sqlx.DB
	dialect Dialect
	logger  *logging.Logger
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// Open applies pending migrations and returns a ready store.
func Open(ctx context.Context, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	dialect, dsn, err := parseDBURL(opts.URL, opts.DisablePreparedBinaryResult)
	if err != nil {
		return nil, err
	}

	if err := applyMigrations(dialect, dsn, logger); err != nil {
		return nil, err
	}

	db, err := otelsqlx.Open(dialect.driverName(), dsn, instrumentOptions(dialect, opts.TracerProvider)...)
	if err != nil {
		return nil, crerr.Wrapf(err, "open %s database", dialect)
	}
	otelsql.ReportDBStatsMetrics(db.DB, otelsql.WithAttributes(attribute.String("db.system", string(dialect))))

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns(dialect)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrapf(err, "ping %s database", dialect)
	}

	logger.Info("database ready", "dialect", string(dialect), "max_open_conns", maxOpen)
	return newStore(db, dialect, logger), nil
}

func newStore(db *sqlx.DB, dialect Dialect, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{db: db, dialect: dialect, logger: logger}
}

// SQLite serializes writers; a single connection avoids SQLITE_BUSY churn.
func defaultMaxOpenConns(dialect Dialect) int {
	if dialect == DialectSQLite {
		return 1
	}
	return 10
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return crerr.Wrap(err, "ping database")
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type txContextKey struct{}

// RunInTx runs fn inside one transaction. Repositories called with the
// context passed to fn use that transaction. The transaction is rolled back
// when fn fails or panics. Nested calls join the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx")
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !crerr.Is(rbErr, sql.ErrTxDone) {
			s.logger.WarnContext(ctx, "rollback tx failed", "error", rbErr)
		}
	}()

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit tx")
	}
	committed = true

	return nil
}

func (s *Store) conn(ctx context.Context) queryer {
	if tx, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return s.db
}

func (s *Store) get(ctx context.Context, dest any, query string, args []any) error {
	q := s.conn(ctx)
	return q.GetContext(ctx, dest, q.Rebind(query), args...)
}

func (s *Store) selectAll(ctx context.Context, dest any, query string, args []any) error {
	q := s.conn(ctx)
	return q.SelectContext(ctx, dest, q.Rebind(query), args...)
}
