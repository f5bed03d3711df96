// Package store defines the persistence contract: a durable key-value
// mapping with whole-value get/set per collection. There are no partial
// updates; every mutation reads a full collection, transforms it in
// memory and writes the full collection back.
package store

import (
	"context"
	"time"

	"github.com/linkvault/linkvault/internal/domain"
)

// Store is injected into the gateway and the syncer so tests can supply
// the in-memory implementation instead of Redis.
type Store interface {
	LoadBookmarks(ctx context.Context) ([]domain.Bookmark, error)
	SaveBookmarks(ctx context.Context, bookmarks []domain.Bookmark) error

	LoadFolders(ctx context.Context) ([]domain.Folder, error)
	SaveFolders(ctx context.Context, folders []domain.Folder) error

	// LoadSettings reports ok=false when the settings key has never
	// been written, so first-run initialization can tell "absent" from
	// "zero values".
	LoadSettings(ctx context.Context) (settings domain.Settings, ok bool, err error)
	SaveSettings(ctx context.Context, settings domain.Settings) error

	LoadTags(ctx context.Context) ([]string, error)
	SaveTags(ctx context.Context, tags []string) error

	LoadLastBackup(ctx context.Context) (*time.Time, error)
	SaveLastBackup(ctx context.Context, at time.Time) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
