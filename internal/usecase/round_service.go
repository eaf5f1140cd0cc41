package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/series-points/internal/domain/round"
	"github.com/riskibarqy/series-points/internal/domain/series"
)

type CreateRoundInput struct {
	SeriesID int64
	Name     string
}

type RoundService struct {
	tx         Transactor
	roundRepo  round.Repository
	seriesRepo series.Repository
}

func NewRoundService(tx Transactor, roundRepo round.Repository, seriesRepo series.Repository) *RoundService {
	return &RoundService{
		tx:         tx,
		roundRepo:  roundRepo,
		seriesRepo: seriesRepo,
	}
}

func (s *RoundService) Create(ctx context.Context, input CreateRoundInput) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Create")
	defer span.End()

	item := round.Round{
		SeriesID: input.SeriesID,
		Name:     input.Name,
	}
	if err := item.Validate(); err != nil {
		return round.Round{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var created round.Round
	err := write(ctx, s.tx, "create_round", func(ctx context.Context) error {
		_, exists, err := s.seriesRepo.GetByID(ctx, item.SeriesID)
		if err != nil {
			return fmt.Errorf("get series: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: series=%d", ErrNotFound, item.SeriesID)
		}

		created, err = s.roundRepo.Create(ctx, item)
		if err != nil {
			return fmt.Errorf("create round: %w", err)
		}
		return nil
	})
	if err != nil {
		return round.Round{}, err
	}

	return created, nil
}

func (s *RoundService) Get(ctx context.Context, roundID int64) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Get")
	defer span.End()

	item, exists, err := s.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		return round.Round{}, fmt.Errorf("get round: %w", err)
	}
	if !exists {
		return round.Round{}, fmt.Errorf("%w: round=%d", ErrNotFound, roundID)
	}

	return item, nil
}
