package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/series-points/internal/platform/logging"
	"github.com/riskibarqy/series-points/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	userService      *usecase.UserService
	seriesService    *usecase.SeriesService
	teamService      *usecase.TeamService
	roundService     *usecase.RoundService
	scoringService   *usecase.ScoringService
	standingsService *usecase.StandingsService
	health           HealthChecker
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	userService *usecase.UserService,
	seriesService *usecase.SeriesService,
	teamService *usecase.TeamService,
	roundService *usecase.RoundService,
	scoringService *usecase.ScoringService,
	standingsService *usecase.StandingsService,
	health HealthChecker,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		userService:      userService,
		seriesService:    seriesService,
		teamService:      teamService,
		roundService:     roundService,
		scoringService:   scoringService,
		standingsService: standingsService,
		health:           health,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	if h.health != nil {
		if err := h.health.Ping(ctx); err != nil {
			h.logger.WarnContext(ctx, "health check failed", "error", err)
			writeError(ctx, w, fmt.Errorf("%w: database unreachable", usecase.ErrDependencyUnavailable))
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, statusDTO{Status: "ok"})
}

func (h *Handler) decodeJSONBody(ctx context.Context, r *http.Request, dst any) error {
	_, span := startSpan(ctx, "httpapi.Handler.decodeJSONBody")
	defer span.End()

	decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// pathID parses an integer path value. Ids are assigned from 1, so zero and
// negative values name no row and report not found.
func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %s=%d", usecase.ErrNotFound, name, id)
	}
	return id, nil
}
