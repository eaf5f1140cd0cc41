package team

import (
	"errors"

	"github.com/riskibarqy/series-points/internal/domain/user"
)

var (
	ErrInvalidCaptain = errors.New("captain_id must be a valid captain")
	ErrInvalidMember  = errors.New("user must be captain or player")
)

// Team is a side competing in the series, led by a captain.
type Team struct {
	ID        int64
	Name      string
	CaptainID int64
}

func (t Team) Validate() error {
	if t.CaptainID <= 0 {
		return ErrInvalidCaptain
	}

	return nil
}

// Member links a captain or player to a team.
type Member struct {
	ID     int64
	UserID int64
	TeamID int64
}

// ValidateCaptain accepts only an existing user holding the captain role.
func ValidateCaptain(candidate user.User, exists bool) error {
	if !exists || !candidate.Role.CanCaptain() {
		return ErrInvalidCaptain
	}
	return nil
}

// ValidateMember accepts only an existing captain or player.
func ValidateMember(candidate user.User, exists bool) error {
	if !exists || !candidate.Role.CanBeMember() {
		return ErrInvalidMember
	}
	return nil
}
