package swipes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("swipe not found")

// Repo defines persistence for swipe decisions.
type Repo interface {
	Upsert(ctx context.Context, swipe Swipe) (Swipe, error)
	ListByUser(ctx context.Context, userID string) ([]Swipe, error)
	Get(ctx context.Context, userID, profileID string) (Swipe, error)
}
