package sqlstore

import (
	"database/sql"
	"errors"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/riskibarqy/series-points/internal/infrastructure/repository/sqlstore/migrations"
	"github.com/riskibarqy/series-points/internal/platform/logging"
)

// applyMigrations brings the schema up to date on a dedicated handle that is
// closed before the serving pool opens.
func applyMigrations(dialect Dialect, dsn string, logger *logging.Logger) error {
	src, err := iofs.New(migrations.FS, string(dialect))
	if err != nil {
		return crerr.Wrapf(err, "load %s migrations", dialect)
	}

	db, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		_ = src.Close()
		return crerr.Wrapf(err, "open %s database for migrations", dialect)
	}

	var driver database.Driver
	switch dialect {
	case DialectPostgres:
		driver, err = migratepg.WithInstance(db, &migratepg.Config{})
	default:
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}
	if err != nil {
		_ = src.Close()
		_ = db.Close()
		return crerr.Wrapf(err, "create %s migration driver", dialect)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(dialect), driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return crerr.Wrap(err, "create migrator")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("close migration source", "error", srcErr)
		}
		if dbErr != nil {
			logger.Warn("close migration db", "error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return crerr.Wrap(err, "apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return crerr.Wrap(err, "read migration version")
	}
	logger.Info("schema up to date", "dialect", string(dialect), "version", version, "dirty", dirty)

	return nil
}
