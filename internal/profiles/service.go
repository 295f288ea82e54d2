package profiles

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"causematch-backend/internal/llm"
)

// ErrInvalidInput marks validation failures in profile operations.
var ErrInvalidInput = errors.New("invalid input")

// Service contains business logic for organization profiles.
type Service struct {
	Repo Repo
	LLM  llm.Client
}

// Get returns the caller's saved profile.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	return s.Repo.GetByUser(ctx, userID)
}

// Create stores a brand-new profile for the user. Fails with ErrAlreadyExists
// when a profile row is already present.
func (s *Service) Create(ctx context.Context, userID string, in Input) (Profile, error) {
	if err := validateInput(in); err != nil {
		return Profile{}, err
	}
	return s.Repo.Create(ctx, in.toProfile(uuid.NewString(), userID))
}

// Save replaces the user's profile with the submitted draft, creating the row
// if the user has never saved before.
func (s *Service) Save(ctx context.Context, userID string, in Input) (Profile, error) {
	if err := validateInput(in); err != nil {
		return Profile{}, err
	}
	return s.Repo.Upsert(ctx, in.toProfile(uuid.NewString(), userID))
}

// Delete removes the user's profile.
func (s *Service) Delete(ctx context.Context, userID string) error {
	return s.Repo.DeleteByUser(ctx, userID)
}

// UpdateFileReference records where the latest uploaded proposal lives without
// touching any of the profile data fields. All three values are required so a
// stale key can never be paired with a fresh URL.
func (s *Service) UpdateFileReference(ctx context.Context, userID, fileName, storageKey, storageURL string) (Profile, error) {
	fileName = strings.TrimSpace(fileName)
	storageKey = strings.TrimSpace(storageKey)
	storageURL = strings.TrimSpace(storageURL)
	if fileName == "" || storageKey == "" || storageURL == "" {
		return Profile{}, ErrInvalidInput
	}
	return s.Repo.UpsertFileReference(ctx, uuid.NewString(), userID, fileName, storageKey, storageURL)
}

// ExtractDraft runs structured extraction over proposal text and returns the
// fields plus a draft of the caller's profile with those fields overlaid.
// Nothing is persisted here; the user saves the draft explicitly.
func (s *Service) ExtractDraft(ctx context.Context, userID, text string) (ExtractedFields, Profile, error) {
	if strings.TrimSpace(text) == "" {
		return ExtractedFields{}, Profile{}, ErrInvalidInput
	}
	raw, err := s.LLM.Complete(ctx, ExtractionPrompt(), text)
	if err != nil {
		return ExtractedFields{}, Profile{}, err
	}
	fields, err := ParseExtracted(raw)
	if err != nil {
		return ExtractedFields{}, Profile{}, err
	}

	current, err := s.Repo.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return ExtractedFields{}, Profile{}, err
		}
		current = Profile{UserID: userID, PrimaryCauseAreas: []string{}, Populations: []string{}}
	}
	return fields, current.Merge(fields), nil
}

func validateInput(in Input) error {
	if in.LegalDesignation != "" && !contains(LegalDesignations, in.LegalDesignation) {
		return ErrInvalidInput
	}
	if in.GeographicalFocus != "" && !contains(GeographicFocusOptions, in.GeographicalFocus) {
		return ErrInvalidInput
	}
	for _, area := range in.PrimaryCauseAreas {
		if !contains(PrimaryCauseAreas, area) {
			return ErrInvalidInput
		}
	}
	for _, pop := range in.Populations {
		if !contains(Populations, pop) {
			return ErrInvalidInput
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
