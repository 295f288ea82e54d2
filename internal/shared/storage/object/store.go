package object

import (
	"context"
	"io"
)

// Store defines the contract for persisting uploaded files to blob storage.
//
// Configured is a pre-flight gate: when it reports false, callers skip Upload
// entirely and surface the absence to the client instead of failing.
type Store interface {
	Configured() bool
	Upload(ctx context.Context, fileName string, contentType string, r io.Reader) (key string, url string, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
