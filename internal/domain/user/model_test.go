package user

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	cases := map[string]Role{
		"scorer":   RoleScorer,
		"captain":  RoleCaptain,
		" Player ": RolePlayer,
		"CAPTAIN":  RoleCaptain,
	}
	for raw, want := range cases {
		got, err := ParseRole(raw)
		if err != nil {
			t.Fatalf("parse role %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse role %q: got=%s want=%s", raw, got, want)
		}
	}

	for _, raw := range []string{"", "admin", "umpire"} {
		if _, err := ParseRole(raw); !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole for %q, got %v", raw, err)
		}
	}
}

func TestRolePermissions(t *testing.T) {
	t.Parallel()

	if !RoleScorer.CanRecord() || RoleCaptain.CanRecord() || RolePlayer.CanRecord() {
		t.Fatalf("only scorers may record")
	}
	if !RoleCaptain.CanCaptain() || RolePlayer.CanCaptain() || RoleScorer.CanCaptain() {
		t.Fatalf("only captains may captain a team")
	}
	if !RoleCaptain.CanBeMember() || !RolePlayer.CanBeMember() || RoleScorer.CanBeMember() {
		t.Fatalf("members must be captains or players")
	}
	if RoleUnknown.Valid() {
		t.Fatalf("unknown role must not be valid")
	}
}

func TestCanAddScorer(t *testing.T) {
	t.Parallel()

	for existing := 0; existing < MaxScorers; existing++ {
		if err := CanAddScorer(existing); err != nil {
			t.Fatalf("existing=%d: unexpected error %v", existing, err)
		}
	}
	if err := CanAddScorer(MaxScorers); !errors.Is(err, ErrScorerLimit) {
		t.Fatalf("expected ErrScorerLimit at cap, got %v", err)
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	if err := (User{Name: "Asha", Role: RolePlayer}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (User{Name: "", Role: RolePlayer}).Validate(); err != nil {
		t.Fatalf("blank name must be accepted, got %v", err)
	}
	if err := (User{Name: "Asha"}).Validate(); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}
