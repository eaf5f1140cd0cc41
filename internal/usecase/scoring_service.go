package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/series-points/internal/domain/scoring"
)

type RecordTeamPointsInput struct {
	RoundID int64
	TeamID  int64
	Points  int
}

type RecordPlayerPerformanceInput struct {
	RoundID           int64
	PlayerID          int64
	PerformancePoints int
	IsManOfMatch      bool
}

// ScoringService appends round facts. Referenced rounds, teams and players
// are not looked up; facts that never resolve are skipped by standings.
type ScoringService struct {
	tx          Transactor
	scoringRepo scoring.Repository
}

func NewScoringService(tx Transactor, scoringRepo scoring.Repository) *ScoringService {
	return &ScoringService{
		tx:          tx,
		scoringRepo: scoringRepo,
	}
}

func (s *ScoringService) RecordTeamPoints(ctx context.Context, input RecordTeamPointsInput) (scoring.TeamPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecordTeamPoints")
	defer span.End()

	var created scoring.TeamPoint
	err := write(ctx, s.tx, "record_team_points", func(ctx context.Context) error {
		var err error
		created, err = s.scoringRepo.AddTeamPoint(ctx, scoring.TeamPoint{
			RoundID: input.RoundID,
			TeamID:  input.TeamID,
			Points:  input.Points,
		})
		if err != nil {
			return fmt.Errorf("add team point: %w", err)
		}
		return nil
	})
	if err != nil {
		return scoring.TeamPoint{}, err
	}

	return created, nil
}

func (s *ScoringService) RecordPlayerPerformance(ctx context.Context, input RecordPlayerPerformanceInput) (scoring.PlayerPerformance, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecordPlayerPerformance")
	defer span.End()

	var created scoring.PlayerPerformance
	err := write(ctx, s.tx, "record_player_performance", func(ctx context.Context) error {
		var err error
		created, err = s.scoringRepo.AddPlayerPerformance(ctx, scoring.PlayerPerformance{
			RoundID:           input.RoundID,
			PlayerID:          input.PlayerID,
			PerformancePoints: input.PerformancePoints,
			IsManOfMatch:      input.IsManOfMatch,
		})
		if err != nil {
			return fmt.Errorf("add player performance: %w", err)
		}
		return nil
	})
	if err != nil {
		return scoring.PlayerPerformance{}, err
	}

	return created, nil
}
