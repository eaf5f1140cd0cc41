package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/series-points/internal/domain/user"
	usermock "github.com/riskibarqy/series-points/internal/mocks/domain/user"
	"github.com/stretchr/testify/mock"
)

func TestUserService_Create_ScorerCap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		existing int
		wantErr  error
	}{
		{name: "sixth scorer accepted", existing: user.MaxScorers - 1},
		{name: "seventh scorer rejected", existing: user.MaxScorers, wantErr: ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := usermock.NewRepository(t)
			tx := &fakeTx{}
			service := NewUserService(tx, repo)

			repo.On("CountByRole", inTx(), user.RoleScorer).Return(tc.existing, nil).Once()
			if tc.wantErr == nil {
				repo.On("Create", inTx(), user.User{Name: "Sam", Role: user.RoleScorer}).
					Return(user.User{ID: 7, Name: "Sam", Role: user.RoleScorer}, nil).
					Once()
			}

			got, err := service.Create(context.Background(), CreateUserInput{Name: " Sam ", Role: "scorer"})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				if !errors.Is(err, user.ErrScorerLimit) {
					t.Fatalf("expected scorer limit cause, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("create scorer: %v", err)
			}
			if got.ID != 7 {
				t.Fatalf("unexpected id: got=%d want=7", got.ID)
			}
			if tx.calls != 1 {
				t.Fatalf("expected one transaction, got %d", tx.calls)
			}
		})
	}
}

func TestUserService_Create_NonScorerSkipsCount(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewUserService(&fakeTx{}, repo)

	repo.On("Create", inTx(), user.User{Name: "Pia", Role: user.RolePlayer}).
		Return(user.User{ID: 2, Name: "Pia", Role: user.RolePlayer}, nil).
		Once()

	got, err := service.Create(context.Background(), CreateUserInput{Name: "Pia", Role: "player"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if got.Role != user.RolePlayer {
		t.Fatalf("unexpected role: %s", got.Role)
	}
	repo.AssertNotCalled(t, "CountByRole", mock.Anything, mock.Anything)
}

func TestUserService_Create_InvalidInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input CreateUserInput
	}{
		{name: "unknown role", input: CreateUserInput{Name: "Zed", Role: "referee"}},
		{name: "empty role", input: CreateUserInput{Name: "Zed"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := usermock.NewRepository(t)
			tx := &fakeTx{}
			service := NewUserService(tx, repo)

			_, err := service.Create(context.Background(), tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if tx.calls != 0 {
				t.Fatalf("expected no transaction, got %d", tx.calls)
			}
		})
	}
}

func TestUserService_Create_RepositoryError(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewUserService(&fakeTx{}, repo)
	repoErr := errors.New("db down")

	repo.On("Create", inTx(), mock.Anything).Return(user.User{}, repoErr).Once()

	_, err := service.Create(context.Background(), CreateUserInput{Name: "Cap", Role: "captain"})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Fatalf("repository failure must not be reported as invalid input: %v", err)
	}
}

func TestUserService_ResolveActor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	service := NewUserService(&fakeTx{}, repo)

	repo.On("GetByID", sameCtx(ctx), int64(1)).
		Return(user.User{ID: 1, Name: "Default Scorer", Role: user.RoleScorer}, true, nil).
		Once()
	repo.On("GetByID", sameCtx(ctx), int64(99)).
		Return(user.User{}, false, nil).
		Once()

	actor, err := service.ResolveActor(ctx, 1)
	if err != nil {
		t.Fatalf("resolve actor: %v", err)
	}
	if !actor.Role.CanRecord() {
		t.Fatalf("expected scorer actor, got %s", actor.Role)
	}

	if _, err := service.ResolveActor(ctx, 99); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown id, got %v", err)
	}
	if _, err := service.ResolveActor(ctx, 0); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for zero id, got %v", err)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	t.Parallel()

	repo := usermock.NewRepository(t)
	service := NewUserService(&fakeTx{}, repo)

	repo.On("GetByID", mock.Anything, int64(5)).Return(user.User{}, false, nil).Once()

	if _, err := service.Get(context.Background(), 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
