// Package memory provides an in-process store.Store used by tests and
// as a stand-in when no Redis is configured. Values are deep-copied on
// the way in and out so callers cannot alias internal state.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/linkvault/linkvault/internal/domain"
)

// Store implements store.Store with a mutex-guarded map of collections.
type Store struct {
	mu         sync.RWMutex
	bookmarks  []domain.Bookmark
	folders    []domain.Folder
	settings   *domain.Settings
	tags       []string
	lastBackup *time.Time
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

func (s *Store) LoadBookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBookmarks(s.bookmarks), nil
}

func (s *Store) SaveBookmarks(ctx context.Context, bookmarks []domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarks = copyBookmarks(bookmarks)
	return nil
}

func (s *Store) LoadFolders(ctx context.Context) ([]domain.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	folders := make([]domain.Folder, len(s.folders))
	copy(folders, s.folders)
	return folders, nil
}

func (s *Store) SaveFolders(ctx context.Context, folders []domain.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = make([]domain.Folder, len(folders))
	copy(s.folders, folders)
	return nil
}

func (s *Store) LoadSettings(ctx context.Context) (domain.Settings, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return domain.Settings{}, false, nil
	}
	return *s.settings, true, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}

func (s *Store) LoadTags(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tags := make([]string, len(s.tags))
	copy(tags, s.tags)
	return tags, nil
}

func (s *Store) SaveTags(ctx context.Context, tags []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = make([]string, len(tags))
	copy(s.tags, tags)
	return nil
}

func (s *Store) LoadLastBackup(ctx context.Context) (*time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastBackup == nil {
		return nil, nil
	}
	at := *s.lastBackup
	return &at, nil
}

func (s *Store) SaveLastBackup(ctx context.Context, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastBackup = &at
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func copyBookmarks(in []domain.Bookmark) []domain.Bookmark {
	out := make([]domain.Bookmark, len(in))
	copy(out, in)
	for i := range out {
		if out[i].Tags != nil {
			tags := make([]string, len(out[i].Tags))
			copy(tags, out[i].Tags)
			out[i].Tags = tags
		}
	}
	return out
}
