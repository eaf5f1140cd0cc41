package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/series-points/internal/domain/team"
	"github.com/riskibarqy/series-points/internal/domain/user"
)

type CreateTeamInput struct {
	Name      string
	CaptainID int64
}

type AddMemberInput struct {
	UserID int64
	TeamID int64
}

type TeamDetails struct {
	Team    team.Team
	Members []team.Member
}

type TeamService struct {
	tx       Transactor
	teamRepo team.Repository
	userRepo user.Repository
}

func NewTeamService(tx Transactor, teamRepo team.Repository, userRepo user.Repository) *TeamService {
	return &TeamService{
		tx:       tx,
		teamRepo: teamRepo,
		userRepo: userRepo,
	}
}

// Create registers a team led by an existing captain.
func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	item := team.Team{
		Name:      input.Name,
		CaptainID: input.CaptainID,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var created team.Team
	err := write(ctx, s.tx, "create_team", func(ctx context.Context) error {
		captain, exists, err := s.userRepo.GetByID(ctx, item.CaptainID)
		if err != nil {
			return fmt.Errorf("get captain: %w", err)
		}
		if err := team.ValidateCaptain(captain, exists); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		created, err = s.teamRepo.Create(ctx, item)
		if err != nil {
			return fmt.Errorf("create team: %w", err)
		}
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}

	return created, nil
}

// AddMember links a captain or player to a team. The user is checked before the team.
func (s *TeamService) AddMember(ctx context.Context, input AddMemberInput) (team.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AddMember")
	defer span.End()

	var created team.Member
	err := write(ctx, s.tx, "add_member", func(ctx context.Context) error {
		candidate, exists, err := s.userRepo.GetByID(ctx, input.UserID)
		if err != nil {
			return fmt.Errorf("get member user: %w", err)
		}
		if err := team.ValidateMember(candidate, exists); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		_, exists, err = s.teamRepo.GetByID(ctx, input.TeamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%d", ErrNotFound, input.TeamID)
		}

		created, err = s.teamRepo.AddMember(ctx, team.Member{UserID: input.UserID, TeamID: input.TeamID})
		if err != nil {
			return fmt.Errorf("add member: %w", err)
		}
		return nil
	})
	if err != nil {
		return team.Member{}, err
	}

	return created, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (TeamDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamDetails{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	members, err := s.teamRepo.ListMembers(ctx, teamID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("list team members: %w", err)
	}

	return TeamDetails{Team: item, Members: members}, nil
}
