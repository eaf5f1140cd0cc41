package sqlstore

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/series-points/internal/domain/round"
	qb "github.com/riskibarqy/series-points/internal/platform/querybuilder"
)

type RoundRepository struct {
	store *Store
}

func NewRoundRepository(store *Store) *RoundRepository {
	return &RoundRepository{store: store}
}

func (r *RoundRepository) Create(ctx context.Context, rd round.Round) (round.Round, error) {
	query, args, err := qb.InsertModel("rounds", roundInsertModel{
		SeriesID: rd.SeriesID,
		Name:     rd.Name,
	}, "RETURNING id")
	if err != nil {
		return round.Round{}, crerr.Wrap(err, "build insert round query")
	}

	if err := r.store.get(ctx, &rd.ID, query, args); err != nil {
		return round.Round{}, crerr.Wrap(err, "insert round")
	}

	return rd, nil
}

func (r *RoundRepository) GetByID(ctx context.Context, roundID int64) (round.Round, bool, error) {
	query, args, err := qb.Select("id", "series_id", "name").From("rounds").
		Where(qb.Eq("id", roundID)).
		ToSQL()
	if err != nil {
		return round.Round{}, false, crerr.Wrap(err, "build get round by id query")
	}

	var row roundTableModel
	if err := r.store.get(ctx, &row, query, args); err != nil {
		if isNotFound(err) {
			return round.Round{}, false, nil
		}
		return round.Round{}, false, crerr.Wrapf(err, "get round by id=%d", roundID)
	}

	return round.Round{ID: row.ID, SeriesID: row.SeriesID, Name: row.Name}, true, nil
}

func (r *RoundRepository) ListBySeries(ctx context.Context, seriesID int64) ([]round.Round, error) {
	query, args, err := qb.Select("id", "series_id", "name").From("rounds").
		Where(qb.Eq("series_id", seriesID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list rounds query")
	}

	var rows []roundTableModel
	if err := r.store.selectAll(ctx, &rows, query, args); err != nil {
		return nil, crerr.Wrapf(err, "list rounds of series=%d", seriesID)
	}

	out := make([]round.Round, 0, len(rows))
	for _, row := range rows {
		out = append(out, round.Round{ID: row.ID, SeriesID: row.SeriesID, Name: row.Name})
	}
	return out, nil
}
