package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/series-points/internal/domain/round"
	"github.com/riskibarqy/series-points/internal/domain/series"
	"github.com/riskibarqy/series-points/internal/domain/standings"
	"github.com/riskibarqy/series-points/internal/platform/resilience"
)

type StandingsService struct {
	seriesRepo    series.Repository
	roundRepo     round.Repository
	standingsRepo standings.Repository

	seriesLoads resilience.Coalescer[standings.SeriesStandings]
	roundLoads  resilience.Coalescer[standings.RoundResults]
}

func NewStandingsService(
	seriesRepo series.Repository,
	roundRepo round.Repository,
	standingsRepo standings.Repository,
) *StandingsService {
	return &StandingsService{
		seriesRepo:    seriesRepo,
		roundRepo:     roundRepo,
		standingsRepo: standingsRepo,
	}
}

// ManOfMatch picks the flagged performance first, then the highest points.
func (s *StandingsService) ManOfMatch(ctx context.Context, roundID int64) (standings.ManOfMatch, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.ManOfMatch")
	defer span.End()

	item, exists, err := s.standingsRepo.ManOfMatch(ctx, roundID)
	if err != nil {
		return standings.ManOfMatch{}, fmt.Errorf("get man of match: %w", err)
	}
	if !exists {
		return standings.ManOfMatch{}, fmt.Errorf("%w: no performances for round=%d", ErrNotFound, roundID)
	}

	return item, nil
}

// SeriesStandings aggregates every round of the series. Concurrent requests
// for the same series share one aggregation.
func (s *StandingsService) SeriesStandings(ctx context.Context, seriesID int64) (standings.SeriesStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.SeriesStandings")
	defer span.End()

	out, _, err := s.seriesLoads.Do(ctx, readKey("series", seriesID), func(ctx context.Context) (standings.SeriesStandings, error) {
		return s.loadSeriesStandings(ctx, seriesID)
	})
	return out, err
}

func (s *StandingsService) loadSeriesStandings(ctx context.Context, seriesID int64) (standings.SeriesStandings, error) {
	_, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return standings.SeriesStandings{}, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return standings.SeriesStandings{}, fmt.Errorf("%w: series=%d", ErrNotFound, seriesID)
	}

	teams, err := s.standingsRepo.TeamTotalsBySeries(ctx, seriesID)
	if err != nil {
		return standings.SeriesStandings{}, fmt.Errorf("sum team points by series: %w", err)
	}
	players, err := s.standingsRepo.PlayerTotalsBySeries(ctx, seriesID)
	if err != nil {
		return standings.SeriesStandings{}, fmt.Errorf("sum player points by series: %w", err)
	}

	return standings.Build(seriesID, teams, players), nil
}

func (s *StandingsService) RoundResults(ctx context.Context, roundID int64) (standings.RoundResults, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RoundResults")
	defer span.End()

	out, _, err := s.roundLoads.Do(ctx, readKey("round", roundID), func(ctx context.Context) (standings.RoundResults, error) {
		return s.loadRoundResults(ctx, roundID)
	})
	return out, err
}

func (s *StandingsService) loadRoundResults(ctx context.Context, roundID int64) (standings.RoundResults, error) {
	item, exists, err := s.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		return standings.RoundResults{}, fmt.Errorf("get round: %w", err)
	}
	if !exists {
		return standings.RoundResults{}, fmt.Errorf("%w: round=%d", ErrNotFound, roundID)
	}

	teams, err := s.standingsRepo.TeamTotalsByRound(ctx, roundID)
	if err != nil {
		return standings.RoundResults{}, fmt.Errorf("sum team points by round: %w", err)
	}
	players, err := s.standingsRepo.PlayerTotalsByRound(ctx, roundID)
	if err != nil {
		return standings.RoundResults{}, fmt.Errorf("sum player points by round: %w", err)
	}

	table := standings.Build(item.SeriesID, teams, players)
	return standings.RoundResults{
		RoundID:     item.ID,
		SeriesID:    item.SeriesID,
		RoundName:   item.Name,
		TeamTable:   table.TeamTable,
		PlayerTable: table.PlayerTable,
	}, nil
}
