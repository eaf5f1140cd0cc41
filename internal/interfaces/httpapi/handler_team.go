package httpapi

import (
	"net/http"

	"github.com/riskibarqy/series-points/internal/usecase"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeJSONBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.Create(ctx, usecase.CreateTeamInput{
		Name:      *req.Name,
		CaptainID: *req.CaptainID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "captain_id", *req.CaptainID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created, nil))
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddMember")
	defer span.End()

	var req addMemberRequest
	if err := h.decodeJSONBody(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.AddMember(ctx, usecase.AddMemberInput{
		UserID: *req.UserID,
		TeamID: *req.TeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add member failed", "user_id", *req.UserID, "team_id", *req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, memberToDTO(created))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	details, err := h.teamService.Get(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(details.Team, details.Members))
}
