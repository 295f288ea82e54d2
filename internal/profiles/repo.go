package profiles

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

// Repo defines persistence operations for profiles. All writes are keyed by
// the unique owner constraint so concurrent saves from the same user
// serialize at the storage layer.
type Repo interface {
	GetByUser(ctx context.Context, userID string) (Profile, error)
	GetByID(ctx context.Context, id string) (Profile, error)
	Create(ctx context.Context, profile Profile) (Profile, error)
	Upsert(ctx context.Context, profile Profile) (Profile, error)
	UpsertFileReference(ctx context.Context, candidateID, userID, fileName, storageKey, storageURL string) (Profile, error)
	DeleteByUser(ctx context.Context, userID string) error
	ListForSwipe(ctx context.Context, excludeUserID string) ([]Profile, error)
}
