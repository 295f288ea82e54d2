package swipes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"causematch-backend/internal/accounts"
	"causematch-backend/internal/profiles"
)

var (
	ErrInvalidAction   = errors.New("action must be \"like\" or \"pass\"")
	ErrProfileNotFound = errors.New("profile not found")
	ErrSelfDecision    = errors.New("cannot swipe on your own profile")
)

// Service contains swipe business logic. It leans on the profiles repo for
// the browse deck and on accounts for owner attribution.
type Service struct {
	Repo     Repo
	Profiles profiles.Repo
	Accounts accounts.Repo
}

// Candidate is one entry in the browse deck: a stranger's profile plus the
// owning account's display identity and the viewer's prior decision, if any.
type Candidate struct {
	Profile       profiles.Profile `json:"profile"`
	OwnerUsername string           `json:"ownerUsername"`
	OwnerName     string           `json:"ownerName"`
	Decision      string           `json:"decision,omitempty"`
}

// Browse lists every completed profile except the viewer's own, newest
// first, annotated with the viewer's earlier decisions.
func (s *Service) Browse(ctx context.Context, viewerID string) ([]Candidate, error) {
	listed, err := s.Profiles.ListForSwipe(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	decisions, err := s.Repo.ListByUser(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	decided := make(map[string]string, len(decisions))
	for _, d := range decisions {
		decided[d.ProfileID] = d.Action
	}

	out := make([]Candidate, 0, len(listed))
	for _, profile := range listed {
		candidate := Candidate{Profile: profile, Decision: decided[profile.ID]}
		owner, err := s.Accounts.GetByID(ctx, profile.UserID)
		if err == nil {
			candidate.OwnerUsername = owner.Username
			candidate.OwnerName = owner.Name
		} else if !errors.Is(err, accounts.ErrNotFound) {
			return nil, fmt.Errorf("load profile owner: %w", err)
		}
		out = append(out, candidate)
	}
	return out, nil
}

// Record stores the viewer's decision on a profile. Deciding twice on the
// same profile replaces the earlier action.
func (s *Service) Record(ctx context.Context, viewerID, profileID, action string) (Swipe, error) {
	if !ValidAction(action) {
		return Swipe{}, ErrInvalidAction
	}

	profile, err := s.Profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return Swipe{}, ErrProfileNotFound
		}
		return Swipe{}, err
	}
	if profile.UserID == viewerID {
		return Swipe{}, ErrSelfDecision
	}

	return s.Repo.Upsert(ctx, Swipe{
		ID:        uuid.NewString(),
		UserID:    viewerID,
		ProfileID: profileID,
		Action:    action,
	})
}
