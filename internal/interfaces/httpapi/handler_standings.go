package httpapi

import "net/http"

func (h *Handler) GetManOfMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManOfMatch")
	defer span.End()

	roundID, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.standingsService.ManOfMatch(ctx, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "get man of match failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, manOfMatchToDTO(item))
}

func (h *Handler) GetRoundResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoundResults")
	defer span.End()

	roundID, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.standingsService.RoundResults(ctx, roundID)
	if err != nil {
		h.logger.WarnContext(ctx, "get round results failed", "round_id", roundID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roundResultsToDTO(item))
}

func (h *Handler) GetSeriesStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeriesStandings")
	defer span.End()

	seriesID, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.standingsService.SeriesStandings(ctx, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "get series standings failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seriesStandingsToDTO(item))
}
