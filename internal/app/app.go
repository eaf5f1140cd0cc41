// Package app assembles the series points service from configuration.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/series-points/internal/config"
	"github.com/riskibarqy/series-points/internal/infrastructure/repository/sqlstore"
	"github.com/riskibarqy/series-points/internal/interfaces/httpapi"
	"github.com/riskibarqy/series-points/internal/platform/logging"
	"github.com/riskibarqy/series-points/internal/usecase"
)

// App owns the HTTP server and the resources it depends on.
type App struct {
	Server *http.Server
	store  *sqlstore.Store
}

// New opens the database, seeds the default scorer and builds the router.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		URL:                         cfg.DBURL,
		MaxOpenConns:                cfg.DBMaxOpenConns,
		DisablePreparedBinaryResult: cfg.DBDisablePreparedBinary,
		Logger:                      logger.Named("sqlstore"),
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := store.Seed(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("seed store: %w", err)
	}

	userRepo := sqlstore.NewUserRepository(store)
	seriesRepo := sqlstore.NewSeriesRepository(store)
	teamRepo := sqlstore.NewTeamRepository(store)
	roundRepo := sqlstore.NewRoundRepository(store)
	scoringRepo := sqlstore.NewScoringRepository(store)
	standingsRepo := sqlstore.NewStandingsRepository(store)

	userSvc := usecase.NewUserService(store, userRepo)
	seriesSvc := usecase.NewSeriesService(store, seriesRepo, roundRepo)
	teamSvc := usecase.NewTeamService(store, teamRepo, userRepo)
	roundSvc := usecase.NewRoundService(store, roundRepo, seriesRepo)
	scoringSvc := usecase.NewScoringService(store, scoringRepo)
	standingsSvc := usecase.NewStandingsService(seriesRepo, roundRepo, standingsRepo)

	handler := httpapi.NewHandler(userSvc, seriesSvc, teamSvc, roundSvc, scoringSvc, standingsSvc, store, logger)
	router := httpapi.NewRouter(handler, userSvc, logger, httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MetricsEnabled:     cfg.MetricsEnabled,
		SwaggerEnabled:     cfg.Swagger(),
	})

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		store: store,
	}, nil
}

// Shutdown drains in-flight requests and then closes the database.
func (a *App) Shutdown(ctx context.Context) error {
	serverErr := a.Server.Shutdown(ctx)
	if err := a.store.Close(); err != nil && serverErr == nil {
		return fmt.Errorf("close store: %w", err)
	}
	return serverErr
}
