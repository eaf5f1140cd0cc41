package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/series-points/internal/domain/round"
	"github.com/riskibarqy/series-points/internal/domain/scoring"
	"github.com/riskibarqy/series-points/internal/domain/series"
	"github.com/riskibarqy/series-points/internal/domain/team"
	"github.com/riskibarqy/series-points/internal/domain/user"
	"github.com/riskibarqy/series-points/internal/platform/logging"
)

type testRepos struct {
	store     *Store
	users     *UserRepository
	series    *SeriesRepository
	teams     *TeamRepository
	rounds    *RoundRepository
	scoring   *ScoringRepository
	standings *StandingsRepository
}

func openTestStore(t *testing.T) testRepos {
	t.Helper()

	store, err := Open(context.Background(), Options{
		URL:    "sqlite://" + filepath.Join(t.TempDir(), "league.db"),
		Logger: logging.NewNop(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return testRepos{
		store:     store,
		users:     NewUserRepository(store),
		series:    NewSeriesRepository(store),
		teams:     NewTeamRepository(store),
		rounds:    NewRoundRepository(store),
		scoring:   NewScoringRepository(store),
		standings: NewStandingsRepository(store),
	}
}

func mustUser(t *testing.T, repos testRepos, name string, role user.Role) user.User {
	t.Helper()
	out, err := repos.users.Create(context.Background(), user.User{Name: name, Role: role})
	require.NoError(t, err)
	return out
}

func mustTeam(t *testing.T, repos testRepos, name string, captainID int64) team.Team {
	t.Helper()
	out, err := repos.teams.Create(context.Background(), team.Team{Name: name, CaptainID: captainID})
	require.NoError(t, err)
	return out
}

func mustSeries(t *testing.T, repos testRepos, name string) series.Series {
	t.Helper()
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	out, err := repos.series.Create(context.Background(), series.Series{
		Name:      name,
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	return out
}

func mustRound(t *testing.T, repos testRepos, seriesID int64, name string) round.Round {
	t.Helper()
	out, err := repos.rounds.Create(context.Background(), round.Round{SeriesID: seriesID, Name: name})
	require.NoError(t, err)
	return out
}

func TestStore_SeedInsertsDefaultScorerOnce(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, repos.store.Seed(ctx))
	require.NoError(t, repos.store.Seed(ctx))

	seeded, ok, err := repos.users.GetByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, DefaultScorerName, seeded.Name)
	assert.Equal(t, user.RoleScorer, seeded.Role)

	count, err := repos.users.CountByRole(ctx, user.RoleScorer)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_OpenIsIdempotent(t *testing.T) {
	t.Parallel()

	url := "sqlite://" + filepath.Join(t.TempDir(), "league.db")
	first, err := Open(context.Background(), Options{URL: url, Logger: logging.NewNop()})
	require.NoError(t, err)
	created, err := NewUserRepository(first).Create(context.Background(), user.User{Name: "Ana", Role: user.RolePlayer})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(context.Background(), Options{URL: url, Logger: logging.NewNop()})
	require.NoError(t, err)
	defer second.Close()

	got, ok, err := NewUserRepository(second).GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ana", got.Name)
}

func TestUserRepository_GetByIDMissing(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	_, ok, err := repos.users.GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSeriesRepository_RoundTripsDates(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	ctx := context.Background()

	created, err := repos.series.Create(ctx, series.Series{
		Name:      "Spring Cup",
		StartDate: time.Date(2025, time.April, 1, 15, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got, ok, err := repos.series.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Spring Cup", got.Name)
	assert.True(t, got.StartDate.Equal(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)), "start=%s", got.StartDate)
	assert.True(t, got.EndDate.Equal(time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)), "end=%s", got.EndDate)
}

func TestTeamRepository_MembersAndRounds(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	ctx := context.Background()

	captain := mustUser(t, repos, "Cap", user.RoleCaptain)
	player := mustUser(t, repos, "Pia", user.RolePlayer)
	tm := mustTeam(t, repos, "Hawks", captain.ID)

	_, err := repos.teams.AddMember(ctx, team.Member{UserID: captain.ID, TeamID: tm.ID})
	require.NoError(t, err)
	_, err = repos.teams.AddMember(ctx, team.Member{UserID: player.ID, TeamID: tm.ID})
	require.NoError(t, err)

	members, err := repos.teams.ListMembers(ctx, tm.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, captain.ID, members[0].UserID)
	assert.Equal(t, player.ID, members[1].UserID)

	s := mustSeries(t, repos, "League")
	mustRound(t, repos, s.ID, "R1")
	mustRound(t, repos, s.ID, "R2")

	rounds, err := repos.rounds.ListBySeries(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.Equal(t, "R1", rounds[0].Name)
	assert.Equal(t, "R2", rounds[1].Name)
}

func TestStandingsRepository_SeriesTotals(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	ctx := context.Background()

	capX := mustUser(t, repos, "Cap X", user.RoleCaptain)
	capY := mustUser(t, repos, "Cap Y", user.RoleCaptain)
	teamX := mustTeam(t, repos, "Team X", capX.ID)
	teamY := mustTeam(t, repos, "Team Y", capY.ID)
	s := mustSeries(t, repos, "Cup")
	r1 := mustRound(t, repos, s.ID, "R1")
	r2 := mustRound(t, repos, s.ID, "R2")

	other := mustSeries(t, repos, "Other")
	otherRound := mustRound(t, repos, other.ID, "R1")

	facts := []scoring.TeamPoint{
		{RoundID: r1.ID, TeamID: teamX.ID, Points: 10},
		{RoundID: r2.ID, TeamID: teamX.ID, Points: 5},
		{RoundID: r1.ID, TeamID: teamY.ID, Points: 12},
		{RoundID: r2.ID, TeamID: teamY.ID, Points: 8},
		{RoundID: otherRound.ID, TeamID: teamX.ID, Points: 100},
	}
	for _, fact := range facts {
		_, err := repos.scoring.AddTeamPoint(ctx, fact)
		require.NoError(t, err)
	}

	totals, err := repos.standings.TeamTotalsBySeries(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, teamY.ID, totals[0].TeamID)
	assert.Equal(t, "Team Y", totals[0].TeamName)
	assert.EqualValues(t, 20, totals[0].Points)
	assert.Equal(t, teamX.ID, totals[1].TeamID)
	assert.EqualValues(t, 15, totals[1].Points)

	roundTotals, err := repos.standings.TeamTotalsByRound(ctx, r2.ID)
	require.NoError(t, err)
	require.Len(t, roundTotals, 2)
	assert.Equal(t, teamY.ID, roundTotals[0].TeamID)
	assert.EqualValues(t, 8, roundTotals[0].Points)
}

func TestStandingsRepository_EqualTotalsOrderByID(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	ctx := context.Background()

	capA := mustUser(t, repos, "Cap A", user.RoleCaptain)
	capB := mustUser(t, repos, "Cap B", user.RoleCaptain)
	teamA := mustTeam(t, repos, "A", capA.ID)
	teamB := mustTeam(t, repos, "B", capB.ID)
	s := mustSeries(t, repos, "Cup")
	r := mustRound(t, repos, s.ID, "R1")

	// Insert B first so storage order differs from id order.
	_, err := repos.scoring.AddTeamPoint(ctx, scoring.TeamPoint{RoundID: r.ID, TeamID: teamB.ID, Points: 7})
	require.NoError(t, err)
	_, err = repos.scoring.AddTeamPoint(ctx, scoring.TeamPoint{RoundID: r.ID, TeamID: teamA.ID, Points: 7})
	require.NoError(t, err)

	totals, err := repos.standings.TeamTotalsBySeries(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, teamA.ID, totals[0].TeamID)
	assert.Equal(t, teamB.ID, totals[1].TeamID)
}

func TestStandingsRepository_ManOfMatchPrefersFlagThenPoints(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	ctx := context.Background()

	p1 := mustUser(t, repos, "P1", user.RolePlayer)
	p2 := mustUser(t, repos, "P2", user.RolePlayer)
	p3 := mustUser(t, repos, "P3", user.RolePlayer)
	s := mustSeries(t, repos, "Cup")
	r := mustRound(t, repos, s.ID, "R1")

	rows := []scoring.PlayerPerformance{
		{RoundID: r.ID, PlayerID: p1.ID, PerformancePoints: 50},
		{RoundID: r.ID, PlayerID: p2.ID, PerformancePoints: 10, IsManOfMatch: true},
		{RoundID: r.ID, PlayerID: p3.ID, PerformancePoints: 30},
	}
	for _, row := range rows {
		_, err := repos.scoring.AddPlayerPerformance(ctx, row)
		require.NoError(t, err)
	}

	got, ok, err := repos.standings.ManOfMatch(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, r.ID, got.RoundID)
	assert.Equal(t, p2.ID, got.PlayerID)
	assert.Equal(t, "P2", got.PlayerName)
}

func TestStandingsRepository_ManOfMatchWithoutFlagUsesPointsThenRowOrder(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	ctx := context.Background()

	p1 := mustUser(t, repos, "P1", user.RolePlayer)
	p2 := mustUser(t, repos, "P2", user.RolePlayer)
	s := mustSeries(t, repos, "Cup")
	r := mustRound(t, repos, s.ID, "R1")

	_, err := repos.scoring.AddPlayerPerformance(ctx, scoring.PlayerPerformance{RoundID: r.ID, PlayerID: p2.ID, PerformancePoints: 40})
	require.NoError(t, err)
	_, err = repos.scoring.AddPlayerPerformance(ctx, scoring.PlayerPerformance{RoundID: r.ID, PlayerID: p1.ID, PerformancePoints: 40})
	require.NoError(t, err)

	got, ok, err := repos.standings.ManOfMatch(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p2.ID, got.PlayerID, "first recorded row wins a tie")
}

func TestStandingsRepository_ManOfMatchNoRows(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	_, ok, err := repos.standings.ManOfMatch(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Facts referencing unknown teams, players or rounds are stored as-is and
// skipped when aggregating.
func TestStandingsRepository_OrphanFactsAreStoredButIgnored(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	ctx := context.Background()

	capX := mustUser(t, repos, "Cap X", user.RoleCaptain)
	player := mustUser(t, repos, "Pia", user.RolePlayer)
	teamX := mustTeam(t, repos, "Team X", capX.ID)
	s := mustSeries(t, repos, "Cup")
	r := mustRound(t, repos, s.ID, "R1")

	orphanTeam, err := repos.scoring.AddTeamPoint(ctx, scoring.TeamPoint{RoundID: r.ID, TeamID: 9999, Points: 500})
	require.NoError(t, err)
	assert.Positive(t, orphanTeam.ID)
	_, err = repos.scoring.AddTeamPoint(ctx, scoring.TeamPoint{RoundID: 8888, TeamID: teamX.ID, Points: 500})
	require.NoError(t, err)
	_, err = repos.scoring.AddTeamPoint(ctx, scoring.TeamPoint{RoundID: r.ID, TeamID: teamX.ID, Points: 3})
	require.NoError(t, err)

	orphanPlayer, err := repos.scoring.AddPlayerPerformance(ctx, scoring.PlayerPerformance{
		RoundID: r.ID, PlayerID: 7777, PerformancePoints: 99, IsManOfMatch: true,
	})
	require.NoError(t, err)
	assert.Positive(t, orphanPlayer.ID)
	_, err = repos.scoring.AddPlayerPerformance(ctx, scoring.PlayerPerformance{
		RoundID: r.ID, PlayerID: player.ID, PerformancePoints: 4,
	})
	require.NoError(t, err)

	teams, err := repos.standings.TeamTotalsBySeries(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, teamX.ID, teams[0].TeamID)
	assert.EqualValues(t, 3, teams[0].Points)

	players, err := repos.standings.PlayerTotalsBySeries(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, player.ID, players[0].PlayerID)

	motm, ok, err := repos.standings.ManOfMatch(ctx, r.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, player.ID, motm.PlayerID)
}

func TestStore_RunInTxRollsBackOnError(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := repos.store.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := repos.users.Create(ctx, user.User{Name: "Ghost", Role: user.RolePlayer}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	count, err := repos.users.CountByRole(ctx, user.RolePlayer)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_RunInTxCommitsAndJoinsNested(t *testing.T) {
	t.Parallel()

	repos := openTestStore(t)
	ctx := context.Background()

	err := repos.store.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := repos.users.Create(ctx, user.User{Name: "A", Role: user.RolePlayer}); err != nil {
			return err
		}
		return repos.store.RunInTx(ctx, func(ctx context.Context) error {
			_, err := repos.users.Create(ctx, user.User{Name: "B", Role: user.RolePlayer})
			return err
		})
	})
	require.NoError(t, err)

	count, err := repos.users.CountByRole(ctx, user.RolePlayer)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
