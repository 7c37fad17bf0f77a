// Package blobstore stores publication issues and cover images by name.
package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Fetch when no blob has the given name.
var ErrNotFound = errors.New("blob not found")

// Store lists, reads and writes named blobs.
type Store interface {
	ListNames(ctx context.Context) ([]string, error)
	Fetch(ctx context.Context, name string) ([]byte, error)
	Store(ctx context.Context, name string, data []byte) error
}
