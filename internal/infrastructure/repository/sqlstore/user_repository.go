package sqlstore

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/series-points/internal/domain/user"
	qb "github.com/riskibarqy/series-points/internal/platform/querybuilder"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	query, args, err := qb.InsertModel("users", userInsertModel{
		Name: u.Name,
		Role: u.Role.String(),
	}, "RETURNING id")
	if err != nil {
		return user.User{}, crerr.Wrap(err, "build insert user query")
	}

	if err := r.store.get(ctx, &u.ID, query, args); err != nil {
		return user.User{}, crerr.Wrap(err, "insert user")
	}

	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (user.User, bool, error) {
	query, args, err := qb.Select("id", "name", "role").From("users").
		Where(qb.Eq("id", userID)).
		ToSQL()
	if err != nil {
		return user.User{}, false, crerr.Wrap(err, "build get user by id query")
	}

	var row userTableModel
	if err := r.store.get(ctx, &row, query, args); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, crerr.Wrapf(err, "get user by id=%d", userID)
	}

	out, err := userFromRow(row)
	if err != nil {
		return user.User{}, false, err
	}
	return out, true, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role user.Role) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("users").
		Where(qb.Eq("role", role.String())).
		ToSQL()
	if err != nil {
		return 0, crerr.Wrap(err, "build count users by role query")
	}

	var count int
	if err := r.store.get(ctx, &count, query, args); err != nil {
		return 0, crerr.Wrapf(err, "count users with role=%s", role)
	}

	return count, nil
}

func userFromRow(row userTableModel) (user.User, error) {
	role, err := user.ParseRole(row.Role)
	if err != nil {
		return user.User{}, crerr.Wrapf(err, "decode user id=%d", row.ID)
	}
	return user.User{ID: row.ID, Name: row.Name, Role: role}, nil
}
