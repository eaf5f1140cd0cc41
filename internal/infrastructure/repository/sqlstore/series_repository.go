package sqlstore

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/series-points/internal/domain/series"
	qb "github.com/riskibarqy/series-points/internal/platform/querybuilder"
)

type SeriesRepository struct {
	store *Store
}

func NewSeriesRepository(store *Store) *SeriesRepository {
	return &SeriesRepository{store: store}
}

func (r *SeriesRepository) Create(ctx context.Context, s series.Series) (series.Series, error) {
	query, args, err := qb.InsertModel("series", seriesInsertModel{
		Name:      s.Name,
		StartDate: newSQLDate(s.StartDate),
		EndDate:   newSQLDate(s.EndDate),
	}, "RETURNING id")
	if err != nil {
		return series.Series{}, crerr.Wrap(err, "build insert series query")
	}

	if err := r.store.get(ctx, &s.ID, query, args); err != nil {
		return series.Series{}, crerr.Wrap(err, "insert series")
	}

	s.StartDate = series.Date(s.StartDate)
	s.EndDate = series.Date(s.EndDate)
	return s, nil
}

func (r *SeriesRepository) GetByID(ctx context.Context, seriesID int64) (series.Series, bool, error) {
	query, args, err := qb.Select("id", "name", "start_date", "end_date").From("series").
		Where(qb.Eq("id", seriesID)).
		ToSQL()
	if err != nil {
		return series.Series{}, false, crerr.Wrap(err, "build get series by id query")
	}

	var row seriesTableModel
	if err := r.store.get(ctx, &row, query, args); err != nil {
		if isNotFound(err) {
			return series.Series{}, false, nil
		}
		return series.Series{}, false, crerr.Wrapf(err, "get series by id=%d", seriesID)
	}

	return series.Series{
		ID:        row.ID,
		Name:      row.Name,
		StartDate: row.StartDate.Time,
		EndDate:   row.EndDate.Time,
	}, true, nil
}
