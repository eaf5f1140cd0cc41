package sqlstore

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/series-points/internal/domain/scoring"
	qb "github.com/riskibarqy/series-points/internal/platform/querybuilder"
)

type ScoringRepository struct {
	store *Store
}

func NewScoringRepository(store *Store) *ScoringRepository {
	return &ScoringRepository{store: store}
}

func (r *ScoringRepository) AddTeamPoint(ctx context.Context, p scoring.TeamPoint) (scoring.TeamPoint, error) {
	query, args, err := qb.InsertModel("team_points", teamPointInsertModel{
		RoundID: p.RoundID,
		TeamID:  p.TeamID,
		Points:  p.Points,
	}, "RETURNING id")
	if err != nil {
		return scoring.TeamPoint{}, crerr.Wrap(err, "build insert team point query")
	}

	if err := r.store.get(ctx, &p.ID, query, args); err != nil {
		return scoring.TeamPoint{}, crerr.Wrapf(err, "insert team point round=%d team=%d", p.RoundID, p.TeamID)
	}

	return p, nil
}

func (r *ScoringRepository) AddPlayerPerformance(ctx context.Context, p scoring.PlayerPerformance) (scoring.PlayerPerformance, error) {
	query, args, err := qb.InsertModel("player_performance", playerPerformanceInsertModel{
		RoundID:           p.RoundID,
		PlayerID:          p.PlayerID,
		PerformancePoints: p.PerformancePoints,
		IsManOfMatch:      p.IsManOfMatch,
	}, "RETURNING id")
	if err != nil {
		return scoring.PlayerPerformance{}, crerr.Wrap(err, "build insert player performance query")
	}

	if err := r.store.get(ctx, &p.ID, query, args); err != nil {
		return scoring.PlayerPerformance{}, crerr.Wrapf(err, "insert player performance round=%d player=%d", p.RoundID, p.PlayerID)
	}

	return p, nil
}
