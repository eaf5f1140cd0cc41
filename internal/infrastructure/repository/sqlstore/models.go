package sqlstore

type userTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Role string `db:"role"`
}

type userInsertModel struct {
	Name string `db:"name"`
	Role string `db:"role"`
}

type seriesTableModel struct {
	ID        int64   `db:"id"`
	Name      string  `db:"name"`
	StartDate sqlDate `db:"start_date"`
	EndDate   sqlDate `db:"end_date"`
}

type seriesInsertModel struct {
	Name      string  `db:"name"`
	StartDate sqlDate `db:"start_date"`
	EndDate   sqlDate `db:"end_date"`
}

type teamTableModel struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	CaptainID int64  `db:"captain_id"`
}

type teamInsertModel struct {
	Name      string `db:"name"`
	CaptainID int64  `db:"captain_id"`
}

type memberTableModel struct {
	ID     int64 `db:"id"`
	UserID int64 `db:"user_id"`
	TeamID int64 `db:"team_id"`
}

type memberInsertModel struct {
	UserID int64 `db:"user_id"`
	TeamID int64 `db:"team_id"`
}

type roundTableModel struct {
	ID       int64  `db:"id"`
	SeriesID int64  `db:"series_id"`
	Name     string `db:"name"`
}

type roundInsertModel struct {
	SeriesID int64  `db:"series_id"`
	Name     string `db:"name"`
}

type teamPointInsertModel struct {
	RoundID int64 `db:"round_id"`
	TeamID  int64 `db:"team_id"`
	Points  int   `db:"points"`
}

type playerPerformanceInsertModel struct {
	RoundID           int64 `db:"round_id"`
	PlayerID          int64 `db:"player_id"`
	PerformancePoints int   `db:"performance_points"`
	IsManOfMatch      bool  `db:"is_man_of_match"`
}

type teamTotalModel struct {
	TeamID      int64  `db:"team_id"`
	TeamName    string `db:"team_name"`
	TotalPoints int64  `db:"total_points"`
}

type playerTotalModel struct {
	PlayerID    int64  `db:"player_id"`
	PlayerName  string `db:"player_name"`
	TotalPoints int64  `db:"total_points"`
}

type manOfMatchModel struct {
	RoundID    int64  `db:"round_id"`
	PlayerID   int64  `db:"player_id"`
	PlayerName string `db:"player_name"`
}
