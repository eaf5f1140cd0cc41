package httpapi

import (
	"net/http"

	"github.com/riskibarqy/series-points/internal/usecase"
)

func (h *Handler) RecordTeamPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordTeamPoints")
	defer span.End()

	var req recordTeamPointsRequest
	if err := h.decodeJSONBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.scoringService.RecordTeamPoints(ctx, usecase.RecordTeamPointsInput{
		RoundID: *req.RoundID,
		TeamID:  *req.TeamID,
		Points:  *req.Points,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record team points failed", "round_id", *req.RoundID, "team_id", *req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamPointToDTO(created))
}

func (h *Handler) RecordPlayerPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordPlayerPerformance")
	defer span.End()

	var req recordPlayerPerformanceRequest
	if err := h.decodeJSONBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.scoringService.RecordPlayerPerformance(ctx, usecase.RecordPlayerPerformanceInput{
		RoundID:           *req.RoundID,
		PlayerID:          *req.PlayerID,
		PerformancePoints: *req.PerformancePoints,
		IsManOfMatch:      req.IsManOfMatch,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record player performance failed", "round_id", *req.RoundID, "player_id", *req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPerformanceToDTO(created))
}
