package swipes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo keeps swipes in process memory.
type MemoryRepo struct {
	mu     sync.RWMutex
	byPair map[string]Swipe
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byPair: make(map[string]Swipe)}
}

func pairKey(userID, profileID string) string {
	return userID + "|" + profileID
}

func (r *MemoryRepo) Upsert(_ context.Context, swipe Swipe) (Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	key := pairKey(swipe.UserID, swipe.ProfileID)
	if existing, ok := r.byPair[key]; ok {
		swipe.ID = existing.ID
		swipe.CreatedAt = existing.CreatedAt
	} else {
		swipe.CreatedAt = now
	}
	swipe.UpdatedAt = now
	r.byPair[key] = swipe
	return swipe, nil
}

func (r *MemoryRepo) ListByUser(_ context.Context, userID string) ([]Swipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Swipe
	for _, swipe := range r.byPair {
		if swipe.UserID == userID {
			out = append(out, swipe)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) Get(_ context.Context, userID, profileID string) (Swipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	swipe, ok := r.byPair[pairKey(userID, profileID)]
	if !ok {
		return Swipe{}, ErrNotFound
	}
	return swipe, nil
}

var _ Repo = (*MemoryRepo)(nil)
