package user

import (
	"errors"
	"fmt"
	"strings"
)

// MaxScorers caps how many users may hold the scorer role.
const MaxScorers = 6

var (
	ErrInvalidRole = errors.New("role must be one of scorer, captain, player")
	ErrScorerLimit = fmt.Errorf("max %d scorer users allowed", MaxScorers)
)

// Role is the fixed responsibility a user holds inside the series.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleScorer
	RoleCaptain
	RolePlayer
)

func ParseRole(v string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "scorer":
		return RoleScorer, nil
	case "captain":
		return RoleCaptain, nil
	case "player":
		return RolePlayer, nil
	default:
		return RoleUnknown, fmt.Errorf("%w: got %q", ErrInvalidRole, v)
	}
}

func (r Role) String() string {
	switch r {
	case RoleScorer:
		return "scorer"
	case RoleCaptain:
		return "captain"
	case RolePlayer:
		return "player"
	default:
		return "unknown"
	}
}

func (r Role) Valid() bool {
	return r == RoleScorer || r == RoleCaptain || r == RolePlayer
}

// CanRecord reports whether the role may create entities and record facts.
func (r Role) CanRecord() bool {
	return r == RoleScorer
}

func (r Role) CanCaptain() bool {
	return r == RoleCaptain
}

func (r Role) CanBeMember() bool {
	return r == RoleCaptain || r == RolePlayer
}

// User is a person known to the series: a scorer, a team captain or a player.
type User struct {
	ID   int64
	Name string
	Role Role
}

func (u User) Validate() error {
	if !u.Role.Valid() {
		return ErrInvalidRole
	}

	return nil
}

// CanAddScorer rejects a new scorer once existing scorers reach MaxScorers.
func CanAddScorer(existing int) error {
	if existing >= MaxScorers {
		return ErrScorerLimit
	}
	return nil
}
