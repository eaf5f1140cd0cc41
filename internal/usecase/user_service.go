package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/series-points/internal/domain/user"
)

type CreateUserInput struct {
	Name string
	Role string
}

type UserService struct {
	tx       Transactor
	userRepo user.Repository
}

func NewUserService(tx Transactor, userRepo user.Repository) *UserService {
	return &UserService{
		tx:       tx,
		userRepo: userRepo,
	}
}

// Create registers a user. A scorer is rejected once user.MaxScorers scorers exist.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Create")
	defer span.End()

	role, err := user.ParseRole(input.Role)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	item := user.User{
		Name: input.Name,
		Role: role,
	}
	if err := item.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var created user.User
	err = write(ctx, s.tx, "create_user", func(ctx context.Context) error {
		if role == user.RoleScorer {
			count, err := s.userRepo.CountByRole(ctx, user.RoleScorer)
			if err != nil {
				return fmt.Errorf("count scorers: %w", err)
			}
			if err := user.CanAddScorer(count); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
		}

		created, err = s.userRepo.Create(ctx, item)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// ResolveActor maps a caller supplied id to a known user.
func (s *UserService) ResolveActor(ctx context.Context, userID int64) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.ResolveActor")
	defer span.End()

	if userID <= 0 {
		return user.User{}, fmt.Errorf("%w: actor id must be positive", ErrUnauthorized)
	}

	actor, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get actor: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: unknown actor id=%d", ErrUnauthorized, userID)
	}

	return actor, nil
}

func (s *UserService) Get(ctx context.Context, userID int64) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Get")
	defer span.End()

	item, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%d", ErrNotFound, userID)
	}

	return item, nil
}
