package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("users").
		Where(Eq("role", "scorer"), Eq("id", int64(2))).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM users WHERE role = ? AND id = ? ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "scorer" || args[1] != int64(2) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinGroupBy(t *testing.T) {
	query, args, err := Select("t.id", "SUM(tp.points) AS total_points").
		From("team_points tp").
		Join("teams t", "t.id = tp.team_id").
		Join("rounds r", "r.id = tp.round_id").
		Where(Eq("r.series_id", int64(3))).
		GroupBy("t.id").
		OrderBy("total_points DESC", "t.id ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("build aggregate query: %v", err)
	}

	wantQuery := "SELECT t.id, SUM(tp.points) AS total_points FROM team_points tp JOIN teams t ON t.id = tp.team_id JOIN rounds r ON r.id = tp.round_id WHERE r.series_id = ? GROUP BY t.id ORDER BY total_points DESC, t.id ASC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_NoWhere(t *testing.T) {
	query, args, err := Select("COUNT(1)").From("users").ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	if query != "SELECT COUNT(1) FROM users" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
	if _, _, err := Select().From("users").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name    string `db:"name"`
		Role    string `db:"role"`
		Skipped string `db:"-"`
		hidden  string
	}

	query, args, err := InsertModel("users", row{Name: "Ravi", Role: "captain", hidden: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO users (name, role) VALUES (?, ?) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Ravi" || args[1] != "captain" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_Rejects(t *testing.T) {
	if _, _, err := InsertModel("users", nil, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
	if _, _, err := InsertModel("users", struct{ Name string }{"x"}, ""); err == nil {
		t.Fatalf("expected error for untagged model")
	}
	if _, _, err := InsertModel(" ", struct {
		Name string `db:"name"`
	}{"x"}, ""); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestInsertModel_PointerWithoutSuffix(t *testing.T) {
	type round struct {
		SeriesID int64  `db:"series_id"`
		Name     string `db:"name"`
	}

	query, args, err := InsertModel("rounds", &round{SeriesID: 4, Name: "Final"}, "")
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	if query != "INSERT INTO rounds (series_id, name) VALUES (?, ?)" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != int64(4) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
