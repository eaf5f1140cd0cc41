package sqlstore

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/series-points/internal/domain/standings"
	qb "github.com/riskibarqy/series-points/internal/platform/querybuilder"
)

// StandingsRepository folds recorded facts into totals. Fact rows are joined
// to their team/player with inner joins, so rows whose reference does not
// resolve drop out of every aggregate.
type StandingsRepository struct {
	store *Store
}

func NewStandingsRepository(store *Store) *StandingsRepository {
	return &StandingsRepository{store: store}
}

func (r *StandingsRepository) ManOfMatch(ctx context.Context, roundID int64) (standings.ManOfMatch, bool, error) {
	query, args, err := qb.Select("pp.round_id AS round_id", "u.id AS player_id", "u.name AS player_name").
		From("player_performance pp").
		Join("users u", "u.id = pp.player_id").
		Where(qb.Eq("pp.round_id", roundID)).
		OrderBy("pp.is_man_of_match DESC", "pp.performance_points DESC", "pp.id ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return standings.ManOfMatch{}, false, crerr.Wrap(err, "build man of match query")
	}

	var row manOfMatchModel
	if err := r.store.get(ctx, &row, query, args); err != nil {
		if isNotFound(err) {
			return standings.ManOfMatch{}, false, nil
		}
		return standings.ManOfMatch{}, false, crerr.Wrapf(err, "get man of match round=%d", roundID)
	}

	return standings.ManOfMatch{
		RoundID:    row.RoundID,
		PlayerID:   row.PlayerID,
		PlayerName: row.PlayerName,
	}, true, nil
}

func (r *StandingsRepository) TeamTotalsBySeries(ctx context.Context, seriesID int64) ([]standings.TeamTotal, error) {
	return r.teamTotals(ctx, qb.Eq("r.series_id", seriesID))
}

func (r *StandingsRepository) TeamTotalsByRound(ctx context.Context, roundID int64) ([]standings.TeamTotal, error) {
	return r.teamTotals(ctx, qb.Eq("tp.round_id", roundID))
}

func (r *StandingsRepository) PlayerTotalsBySeries(ctx context.Context, seriesID int64) ([]standings.PlayerTotal, error) {
	return r.playerTotals(ctx, qb.Eq("r.series_id", seriesID))
}

func (r *StandingsRepository) PlayerTotalsByRound(ctx context.Context, roundID int64) ([]standings.PlayerTotal, error) {
	return r.playerTotals(ctx, qb.Eq("pp.round_id", roundID))
}

func (r *StandingsRepository) teamTotals(ctx context.Context, scope qb.Condition) ([]standings.TeamTotal, error) {
	query, args, err := qb.Select("t.id AS team_id", "t.name AS team_name", "COALESCE(SUM(tp.points), 0) AS total_points").
		From("team_points tp").
		Join("rounds r", "r.id = tp.round_id").
		Join("teams t", "t.id = tp.team_id").
		Where(scope).
		GroupBy("t.id", "t.name").
		OrderBy("total_points DESC", "t.id ASC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build team totals query")
	}

	var rows []teamTotalModel
	if err := r.store.selectAll(ctx, &rows, query, args); err != nil {
		return nil, crerr.Wrap(err, "select team totals")
	}

	out := make([]standings.TeamTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.TeamTotal{
			TeamID:   row.TeamID,
			TeamName: row.TeamName,
			Points:   row.TotalPoints,
		})
	}
	return out, nil
}

func (r *StandingsRepository) playerTotals(ctx context.Context, scope qb.Condition) ([]standings.PlayerTotal, error) {
	query, args, err := qb.Select("u.id AS player_id", "u.name AS player_name", "COALESCE(SUM(pp.performance_points), 0) AS total_points").
		From("player_performance pp").
		Join("rounds r", "r.id = pp.round_id").
		Join("users u", "u.id = pp.player_id").
		Where(scope).
		GroupBy("u.id", "u.name").
		OrderBy("total_points DESC", "u.id ASC").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build player totals query")
	}

	var rows []playerTotalModel
	if err := r.store.selectAll(ctx, &rows, query, args); err != nil {
		return nil, crerr.Wrap(err, "select player totals")
	}

	out := make([]standings.PlayerTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.PlayerTotal{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Points:     row.TotalPoints,
		})
	}
	return out, nil
}
