package httpapi

import (
	"net/http"

	"github.com/riskibarqy/series-points/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, opts RouterOptions) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if opts.MetricsEnabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}
	if !opts.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
}

func registerReadRoutes(mux *http.ServeMux, handler *Handler, actors ActorResolver) {
	read := func(h http.HandlerFunc) http.Handler {
		return RequireActor(actors, h)
	}

	mux.Handle("GET /users/{id}", read(handler.GetUser))
	mux.Handle("GET /series/{id}", read(handler.GetSeries))
	mux.Handle("GET /series/{id}/standings", read(handler.GetSeriesStandings))
	mux.Handle("GET /teams/{id}", read(handler.GetTeam))
	mux.Handle("GET /rounds/{id}", read(handler.GetRound))
	mux.Handle("GET /rounds/{id}/man-of-match", read(handler.GetManOfMatch))
	mux.Handle("GET /rounds/{id}/results", read(handler.GetRoundResults))
}

func registerScorerRoutes(mux *http.ServeMux, handler *Handler, actors ActorResolver) {
	write := func(h http.HandlerFunc) http.Handler {
		return RequireActor(actors, RequireScorer(h))
	}

	mux.Handle("POST /users", write(handler.CreateUser))
	mux.Handle("POST /series", write(handler.CreateSeries))
	mux.Handle("POST /teams", write(handler.CreateTeam))
	mux.Handle("POST /members", write(handler.AddMember))
	mux.Handle("POST /rounds", write(handler.CreateRound))
	mux.Handle("POST /team-points", write(handler.RecordTeamPoints))
	mux.Handle("POST /player-performance", write(handler.RecordPlayerPerformance))
}
