package sqlstore

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/series-points/internal/domain/series"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// sqlDate stores a calendar date as YYYY-MM-DD. Postgres DATE columns scan
// back as time.Time and SQLite TEXT columns as string; both are accepted.
type sqlDate struct {
	time.Time
}

func newSQLDate(t time.Time) sqlDate {
	return sqlDate{Time: series.Date(t)}
}

func (d sqlDate) Value() (driver.Value, error) {
	return d.Format(series.DateLayout), nil
}

func (d *sqlDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = series.Date(v)
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		return fmt.Errorf("scan date: null value")
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

func (d *sqlDate) parse(v string) error {
	if len(v) > len(series.DateLayout) {
		v = v[:len(series.DateLayout)]
	}
	t, err := time.Parse(series.DateLayout, v)
	if err != nil {
		return fmt.Errorf("scan date: %w", err)
	}
	d.Time = t
	return nil
}
