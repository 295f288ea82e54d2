package resumes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resume not found")

// Page bounds for listing. Callers asking for more than MaxPageSize get
// MaxPageSize.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Repo defines persistence for the resume collection.
type Repo interface {
	Create(ctx context.Context, resume Resume) (Resume, error)
	GetByID(ctx context.Context, id string) (Resume, error)
	List(ctx context.Context, limit, offset int) ([]Resume, int, error)
	Delete(ctx context.Context, id string) error
}
