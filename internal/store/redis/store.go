// Package redis persists each collection as a whole JSON value under a
// fixed key. Redis serializes writes per key, which is the only
// atomicity the storage contract promises.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/linkvault/linkvault/internal/domain"
)

// Store implements store.Store on a Redis client.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis-backed store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) LoadBookmarks(ctx context.Context) ([]domain.Bookmark, error) {
	var bookmarks []domain.Bookmark
	if err := s.getJSON(ctx, KeyBookmarks, &bookmarks); err != nil {
		return nil, err
	}
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	return bookmarks, nil
}

func (s *Store) SaveBookmarks(ctx context.Context, bookmarks []domain.Bookmark) error {
	return s.setJSON(ctx, KeyBookmarks, bookmarks)
}

func (s *Store) LoadFolders(ctx context.Context) ([]domain.Folder, error) {
	var folders []domain.Folder
	if err := s.getJSON(ctx, KeyFolders, &folders); err != nil {
		return nil, err
	}
	if folders == nil {
		folders = []domain.Folder{}
	}
	return folders, nil
}

func (s *Store) SaveFolders(ctx context.Context, folders []domain.Folder) error {
	return s.setJSON(ctx, KeyFolders, folders)
}

func (s *Store) LoadSettings(ctx context.Context) (domain.Settings, bool, error) {
	data, err := s.client.Get(ctx, KeySettings).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Settings{}, false, nil
		}
		return domain.Settings{}, false, fmt.Errorf("failed to get %s: %w", KeySettings, err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.Settings{}, false, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return settings, true, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.setJSON(ctx, KeySettings, settings)
}

func (s *Store) LoadTags(ctx context.Context) ([]string, error) {
	var tags []string
	if err := s.getJSON(ctx, KeyTags, &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (s *Store) SaveTags(ctx context.Context, tags []string) error {
	return s.setJSON(ctx, KeyTags, tags)
}

func (s *Store) LoadLastBackup(ctx context.Context) (*time.Time, error) {
	data, err := s.client.Get(ctx, KeyLastBackup).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", KeyLastBackup, err)
	}

	at, err := time.Parse(time.RFC3339Nano, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse last backup timestamp: %w", err)
	}
	return &at, nil
}

func (s *Store) SaveLastBackup(ctx context.Context, at time.Time) error {
	if err := s.client.Set(ctx, KeyLastBackup, at.Format(time.RFC3339Nano), 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", KeyLastBackup, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) getJSON(ctx context.Context, key string, out interface{}) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *Store) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	// No TTL: bookmark data is durable, unlike cache entries.
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}
