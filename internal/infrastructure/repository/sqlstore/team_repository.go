package sqlstore

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/series-points/internal/domain/team"
	qb "github.com/riskibarqy/series-points/internal/platform/querybuilder"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamInsertModel{
		Name:      t.Name,
		CaptainID: t.CaptainID,
	}, "RETURNING id")
	if err != nil {
		return team.Team{}, crerr.Wrap(err, "build insert team query")
	}

	if err := r.store.get(ctx, &t.ID, query, args); err != nil {
		return team.Team{}, crerr.Wrap(err, "insert team")
	}

	return t, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select("id", "name", "captain_id").From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, crerr.Wrap(err, "build get team by id query")
	}

	var row teamTableModel
	if err := r.store.get(ctx, &row, query, args); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, crerr.Wrapf(err, "get team by id=%d", teamID)
	}

	return team.Team{ID: row.ID, Name: row.Name, CaptainID: row.CaptainID}, true, nil
}

func (r *TeamRepository) AddMember(ctx context.Context, m team.Member) (team.Member, error) {
	query, args, err := qb.InsertModel("members", memberInsertModel{
		UserID: m.UserID,
		TeamID: m.TeamID,
	}, "RETURNING id")
	if err != nil {
		return team.Member{}, crerr.Wrap(err, "build insert member query")
	}

	if err := r.store.get(ctx, &m.ID, query, args); err != nil {
		return team.Member{}, crerr.Wrap(err, "insert member")
	}

	return m, nil
}

func (r *TeamRepository) ListMembers(ctx context.Context, teamID int64) ([]team.Member, error) {
	query, args, err := qb.Select("id", "user_id", "team_id").From("members").
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list members query")
	}

	var rows []memberTableModel
	if err := r.store.selectAll(ctx, &rows, query, args); err != nil {
		return nil, crerr.Wrapf(err, "list members of team=%d", teamID)
	}

	out := make([]team.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Member{ID: row.ID, UserID: row.UserID, TeamID: row.TeamID})
	}
	return out, nil
}
