package standings

import (
	"cmp"
	"slices"
)

// TeamTotal is a team's summed points over a set of rounds.
type TeamTotal struct {
	TeamID   int64
	TeamName string
	Points   int64
}

// PlayerTotal is a player's summed performance points over a set of rounds.
type PlayerTotal struct {
	PlayerID   int64
	PlayerName string
	Points     int64
}

// ManOfMatch is the top performance of one round.
type ManOfMatch struct {
	RoundID    int64
	PlayerID   int64
	PlayerName string
}

// SeriesStandings is the derived leaderboard of a series.
type SeriesStandings struct {
	SeriesID       int64
	WinnerTeam     *TeamTotal
	ManOfTheSeries *PlayerTotal
	TeamTable      []TeamTotal
	PlayerTable    []PlayerTotal
}

// RoundResults is the per-round breakdown of team and player totals.
type RoundResults struct {
	RoundID     int64
	SeriesID    int64
	RoundName   string
	TeamTable   []TeamTotal
	PlayerTable []PlayerTotal
}

// RankTeams orders by points descending, then team id ascending.
func RankTeams(items []TeamTotal) {
	slices.SortStableFunc(items, func(a, b TeamTotal) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.TeamID, b.TeamID)
	})
}

// RankPlayers orders by points descending, then player id ascending.
func RankPlayers(items []PlayerTotal) {
	slices.SortStableFunc(items, func(a, b PlayerTotal) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})
}

// Build ranks both tables and picks the top entry of each as the series winners.
func Build(seriesID int64, teams []TeamTotal, players []PlayerTotal) SeriesStandings {
	teamTable := append(make([]TeamTotal, 0, len(teams)), teams...)
	playerTable := append(make([]PlayerTotal, 0, len(players)), players...)
	RankTeams(teamTable)
	RankPlayers(playerTable)

	out := SeriesStandings{
		SeriesID:    seriesID,
		TeamTable:   teamTable,
		PlayerTable: playerTable,
	}
	if len(teamTable) > 0 {
		winner := teamTable[0]
		out.WinnerTeam = &winner
	}
	if len(playerTable) > 0 {
		best := playerTable[0]
		out.ManOfTheSeries = &best
	}

	return out
}
