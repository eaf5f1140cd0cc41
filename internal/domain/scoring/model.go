package scoring

// TeamPoint is one points award for a team in a round. Several rows for the
// same round and team are allowed; totals are summed at read time.
type TeamPoint struct {
	ID      int64
	RoundID int64
	TeamID  int64
	Points  int
}

// PlayerPerformance is one performance record for a player in a round.
type PlayerPerformance struct {
	ID                int64
	RoundID           int64
	PlayerID          int64
	PerformancePoints int
	IsManOfMatch      bool
}
