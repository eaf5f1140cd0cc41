package httpapi

import (
	"github.com/riskibarqy/series-points/internal/domain/round"
	"github.com/riskibarqy/series-points/internal/domain/scoring"
	"github.com/riskibarqy/series-points/internal/domain/series"
	"github.com/riskibarqy/series-points/internal/domain/standings"
	"github.com/riskibarqy/series-points/internal/domain/team"
	"github.com/riskibarqy/series-points/internal/domain/user"
)

type createUserRequest struct {
	Name *string `json:"name" validate:"required"`
	Role string  `json:"role" validate:"required,oneof=scorer captain player"`
}

type createSeriesRequest struct {
	Name      *string `json:"name" validate:"required"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type createTeamRequest struct {
	Name      *string `json:"name" validate:"required"`
	CaptainID *int64  `json:"captain_id" validate:"required"`
}

type addMemberRequest struct {
	UserID *int64 `json:"user_id" validate:"required"`
	TeamID *int64 `json:"team_id" validate:"required"`
}

type createRoundRequest struct {
	SeriesID *int64  `json:"series_id" validate:"required"`
	Name     *string `json:"name" validate:"required"`
}

type recordTeamPointsRequest struct {
	RoundID *int64 `json:"round_id" validate:"required"`
	TeamID  *int64 `json:"team_id" validate:"required"`
	Points  *int   `json:"points" validate:"required"`
}

type recordPlayerPerformanceRequest struct {
	RoundID           *int64 `json:"round_id" validate:"required"`
	PlayerID          *int64 `json:"player_id" validate:"required"`
	PerformancePoints *int   `json:"performance_points" validate:"required"`
	IsManOfMatch      bool   `json:"is_man_of_match"`
}

type statusDTO struct {
	Status string `json:"status"`
}

type userDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type seriesDTO struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Rounds    []roundDTO `json:"rounds,omitempty"`
}

type teamDTO struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	CaptainID int64       `json:"captain_id"`
	Members   []memberDTO `json:"members,omitempty"`
}

type memberDTO struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`
	TeamID int64 `json:"team_id"`
}

type roundDTO struct {
	ID       int64  `json:"id"`
	SeriesID int64  `json:"series_id"`
	Name     string `json:"name"`
}

type recordedDTO struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

type manOfMatchDTO struct {
	RoundID    int64  `json:"round_id"`
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
}

type teamTotalDTO struct {
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
	Points   int64  `json:"points"`
}

type playerTotalDTO struct {
	PlayerID   int64  `json:"player_id"`
	PlayerName string `json:"player_name"`
	Points     int64  `json:"points"`
}

type seriesStandingsDTO struct {
	SeriesID       int64            `json:"series_id"`
	WinnerTeam     *teamTotalDTO    `json:"winner_team"`
	ManOfTheSeries *playerTotalDTO  `json:"man_of_the_series"`
	TeamTable      []teamTotalDTO   `json:"team_table"`
	PlayerTable    []playerTotalDTO `json:"player_table"`
}

type roundResultsDTO struct {
	RoundID     int64            `json:"round_id"`
	SeriesID    int64            `json:"series_id"`
	RoundName   string           `json:"round_name"`
	TeamTable   []teamTotalDTO   `json:"team_table"`
	PlayerTable []playerTotalDTO `json:"player_table"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{ID: u.ID, Name: u.Name, Role: u.Role.String()}
}

func seriesToDTO(s series.Series, rounds []round.Round) seriesDTO {
	out := seriesDTO{
		ID:        s.ID,
		Name:      s.Name,
		StartDate: s.StartDate.Format(series.DateLayout),
		EndDate:   s.EndDate.Format(series.DateLayout),
	}
	for _, r := range rounds {
		out.Rounds = append(out.Rounds, roundToDTO(r))
	}
	return out
}

func teamToDTO(t team.Team, members []team.Member) teamDTO {
	out := teamDTO{ID: t.ID, Name: t.Name, CaptainID: t.CaptainID}
	for _, m := range members {
		out.Members = append(out.Members, memberToDTO(m))
	}
	return out
}

func memberToDTO(m team.Member) memberDTO {
	return memberDTO{ID: m.ID, UserID: m.UserID, TeamID: m.TeamID}
}

func roundToDTO(r round.Round) roundDTO {
	return roundDTO{ID: r.ID, SeriesID: r.SeriesID, Name: r.Name}
}

func teamPointToDTO(p scoring.TeamPoint) recordedDTO {
	return recordedDTO{Status: "ok", ID: p.ID}
}

func playerPerformanceToDTO(p scoring.PlayerPerformance) recordedDTO {
	return recordedDTO{Status: "ok", ID: p.ID}
}

func manOfMatchToDTO(m standings.ManOfMatch) manOfMatchDTO {
	return manOfMatchDTO{RoundID: m.RoundID, PlayerID: m.PlayerID, PlayerName: m.PlayerName}
}

func teamTotalToDTO(t standings.TeamTotal) teamTotalDTO {
	return teamTotalDTO{TeamID: t.TeamID, TeamName: t.TeamName, Points: t.Points}
}

func playerTotalToDTO(p standings.PlayerTotal) playerTotalDTO {
	return playerTotalDTO{PlayerID: p.PlayerID, PlayerName: p.PlayerName, Points: p.Points}
}

func teamTableToDTO(items []standings.TeamTotal) []teamTotalDTO {
	out := make([]teamTotalDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamTotalToDTO(item))
	}
	return out
}

func playerTableToDTO(items []standings.PlayerTotal) []playerTotalDTO {
	out := make([]playerTotalDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerTotalToDTO(item))
	}
	return out
}

func seriesStandingsToDTO(s standings.SeriesStandings) seriesStandingsDTO {
	out := seriesStandingsDTO{
		SeriesID:    s.SeriesID,
		TeamTable:   teamTableToDTO(s.TeamTable),
		PlayerTable: playerTableToDTO(s.PlayerTable),
	}
	if s.WinnerTeam != nil {
		winner := teamTotalToDTO(*s.WinnerTeam)
		out.WinnerTeam = &winner
	}
	if s.ManOfTheSeries != nil {
		best := playerTotalToDTO(*s.ManOfTheSeries)
		out.ManOfTheSeries = &best
	}
	return out
}

func roundResultsToDTO(r standings.RoundResults) roundResultsDTO {
	return roundResultsDTO{
		RoundID:     r.RoundID,
		SeriesID:    r.SeriesID,
		RoundName:   r.RoundName,
		TeamTable:   teamTableToDTO(r.TeamTable),
		PlayerTable: playerTableToDTO(r.PlayerTable),
	}
}
