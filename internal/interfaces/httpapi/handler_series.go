package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/series-points/internal/domain/series"
	"github.com/riskibarqy/series-points/internal/usecase"
)

func (h *Handler) CreateSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeries")
	defer span.End()

	var req createSeriesRequest
	if err := h.decodeJSONBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	start, err := series.ParseDate(req.StartDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: start_date: %v", usecase.ErrInvalidInput, err))
		return
	}
	end, err := series.ParseDate(req.EndDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: end_date: %v", usecase.ErrInvalidInput, err))
		return
	}

	created, err := h.seriesService.Create(ctx, usecase.CreateSeriesInput{
		Name:      *req.Name,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create series failed", "start_date", req.StartDate, "end_date", req.EndDate, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seriesToDTO(created, nil))
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeries")
	defer span.End()

	seriesID, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.seriesService.Get(ctx, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "get series failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seriesToDTO(details.Series, details.Rounds))
}
