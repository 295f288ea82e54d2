package profiles

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo keeps profiles in process memory. Used when no database is
// configured and in handler tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string]Profile
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string]Profile)}
}

func (r *MemoryRepo) GetByUser(_ context.Context, userID string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.byUser[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, profile := range r.byUser {
		if profile.ID == id {
			return profile, nil
		}
	}
	return Profile{}, ErrNotFound
}

func (r *MemoryRepo) Create(_ context.Context, profile Profile) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[profile.UserID]; ok {
		return Profile{}, ErrAlreadyExists
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.byUser[profile.UserID] = profile
	return profile, nil
}

func (r *MemoryRepo) Upsert(_ context.Context, profile Profile) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.byUser[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	r.byUser[profile.UserID] = profile
	return profile, nil
}

func (r *MemoryRepo) UpsertFileReference(_ context.Context, candidateID, userID, fileName, storageKey, storageURL string) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	profile, ok := r.byUser[userID]
	if !ok {
		profile = Profile{
			ID:                candidateID,
			UserID:            userID,
			PrimaryCauseAreas: []string{},
			Populations:       []string{},
			CreatedAt:         now,
		}
	}
	profile.FileName = fileName
	profile.StorageKey = storageKey
	profile.StorageURL = storageURL
	profile.UpdatedAt = now
	r.byUser[userID] = profile
	return profile, nil
}

func (r *MemoryRepo) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[userID]; !ok {
		return ErrNotFound
	}
	delete(r.byUser, userID)
	return nil
}

func (r *MemoryRepo) ListForSwipe(_ context.Context, excludeUserID string) ([]Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Profile
	for _, profile := range r.byUser {
		if profile.UserID == excludeUserID || profile.OrganizationName == "" {
			continue
		}
		out = append(out, profile)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
