package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/series-points/internal/domain/round"
	"github.com/riskibarqy/series-points/internal/domain/series"
)

type CreateSeriesInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

type SeriesDetails struct {
	Series series.Series
	Rounds []round.Round
}

type SeriesService struct {
	tx         Transactor
	seriesRepo series.Repository
	roundRepo  round.Repository
}

func NewSeriesService(tx Transactor, seriesRepo series.Repository, roundRepo round.Repository) *SeriesService {
	return &SeriesService{
		tx:         tx,
		seriesRepo: seriesRepo,
		roundRepo:  roundRepo,
	}
}

func (s *SeriesService) Create(ctx context.Context, input CreateSeriesInput) (series.Series, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Create")
	defer span.End()

	item := series.Series{
		Name:      input.Name,
		StartDate: series.Date(input.StartDate),
		EndDate:   series.Date(input.EndDate),
	}
	if err := item.Validate(); err != nil {
		return series.Series{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var created series.Series
	err := write(ctx, s.tx, "create_series", func(ctx context.Context) error {
		var err error
		created, err = s.seriesRepo.Create(ctx, item)
		if err != nil {
			return fmt.Errorf("create series: %w", err)
		}
		return nil
	})
	if err != nil {
		return series.Series{}, err
	}

	return created, nil
}

// Get returns the series with its rounds in creation order.
func (s *SeriesService) Get(ctx context.Context, seriesID int64) (SeriesDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Get")
	defer span.End()

	item, exists, err := s.seriesRepo.GetByID(ctx, seriesID)
	if err != nil {
		return SeriesDetails{}, fmt.Errorf("get series: %w", err)
	}
	if !exists {
		return SeriesDetails{}, fmt.Errorf("%w: series=%d", ErrNotFound, seriesID)
	}

	rounds, err := s.roundRepo.ListBySeries(ctx, seriesID)
	if err != nil {
		return SeriesDetails{}, fmt.Errorf("list rounds by series: %w", err)
	}

	return SeriesDetails{Series: item, Rounds: rounds}, nil
}
