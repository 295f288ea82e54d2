package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo keeps resumes in process memory.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Resume
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Resume)}
}

func (r *MemoryRepo) Create(_ context.Context, resume Resume) (Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	resume.CreatedAt = now
	resume.UpdatedAt = now
	r.byID[resume.ID] = resume
	return resume, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id string) (Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byID[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

func (r *MemoryRepo) List(_ context.Context, limit, offset int) ([]Resume, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Resume, 0, len(r.byID))
	for _, resume := range r.byID {
		all = append(all, resume)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *MemoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
