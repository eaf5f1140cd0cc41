package sqlstore

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/series-points/internal/domain/user"
	qb "github.com/riskibarqy/series-points/internal/platform/querybuilder"
)

// DefaultScorerName is the user inserted into an empty store so the first
// request has an actor allowed to record.
const DefaultScorerName = "Default Scorer"

// Seed inserts the default scorer when no users exist yet. On a fresh store
// that user receives id 1.
func (s *Store) Seed(ctx context.Context) error {
	return s.RunInTx(ctx, func(ctx context.Context) error {
		countQuery, countArgs, err := qb.Select("COUNT(1)").From("users").ToSQL()
		if err != nil {
			return crerr.Wrap(err, "build count users query")
		}

		var count int
		if err := s.get(ctx, &count, countQuery, countArgs); err != nil {
			return crerr.Wrap(err, "count users")
		}
		if count > 0 {
			return nil
		}

		insertQuery, insertArgs, err := qb.InsertModel("users", userInsertModel{
			Name: DefaultScorerName,
			Role: user.RoleScorer.String(),
		}, "RETURNING id")
		if err != nil {
			return crerr.Wrap(err, "build seed user query")
		}

		var id int64
		if err := s.get(ctx, &id, insertQuery, insertArgs); err != nil {
			return crerr.Wrap(err, "seed default scorer")
		}

		s.logger.InfoContext(ctx, "seeded default scorer", "user_id", id)
		return nil
	})
}
