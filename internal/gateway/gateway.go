// Package gateway is the single authority for mutations against the
// bookmark and folder collections. Every operation is one read of the
// full collection, an in-memory transform and one whole-collection
// write; a mutex serializes the cycles so concurrent messages cannot
// lose updates against each other.
package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/linkvault/linkvault/internal/badge"
	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/store"
)

// Gateway applies create/update/delete operations, maintains folder
// counts and re-derives the badge after count-changing mutations.
type Gateway struct {
	mu      sync.Mutex
	store   store.Store
	badge   badge.Setter
	logger  logger.Logger
	version string
	now     func() time.Time
	newID   func() string
}

// New creates a Gateway. version tags export snapshots.
func New(st store.Store, b badge.Setter, log logger.Logger, version string) *Gateway {
	return &Gateway{
		store:   st,
		badge:   b,
		logger:  log,
		version: version,
		now:     time.Now,
		newID:   domain.NewID,
	}
}

// SaveBookmark upserts by URL. An existing record is merged with the
// incoming fields (unset incoming fields preserve the existing value,
// and the stored id always survives); a new record is appended and its
// folder count bumped. This is the popup's save path.
func (g *Gateway) SaveBookmark(ctx context.Context, bm domain.Bookmark) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	bookmarks, err := g.store.LoadBookmarks(ctx)
	if err != nil {
		return err
	}
	folders, err := g.store.LoadFolders(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, existing := range bookmarks {
		if existing.URL == bm.URL {
			idx = i
			break
		}
	}

	if idx >= 0 {
		bookmarks[idx] = mergeBookmark(bookmarks[idx], bm)
	} else {
		bm = g.fillDefaults(bm)
		bookmarks = append(bookmarks, bm)
		for i := range folders {
			if folders[i].ID == bm.Folder {
				folders[i].Count++
				break
			}
		}
	}

	if err := g.store.SaveBookmarks(ctx, bookmarks); err != nil {
		return err
	}
	if err := g.store.SaveFolders(ctx, folders); err != nil {
		return err
	}

	g.updateBadge(ctx, len(bookmarks))
	return nil
}

// DeleteBookmark removes by id. A missing id is a silent no-op.
func (g *Gateway) DeleteBookmark(ctx context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	bookmarks, err := g.store.LoadBookmarks(ctx)
	if err != nil {
		return err
	}
	folders, err := g.store.LoadFolders(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, b := range bookmarks {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	for i := range folders {
		if folders[i].ID == bookmarks[idx].Folder && folders[i].Count > 0 {
			folders[i].Count--
			break
		}
	}
	bookmarks = append(bookmarks[:idx], bookmarks[idx+1:]...)

	if err := g.store.SaveBookmarks(ctx, bookmarks); err != nil {
		return err
	}
	if err := g.store.SaveFolders(ctx, folders); err != nil {
		return err
	}

	g.updateBadge(ctx, len(bookmarks))
	return nil
}

// UpdateBookmark replaces a record wholesale by id. No merge, no folder
// count maintenance; a missing id is a no-op. Kept distinct from
// SaveBookmark on purpose, the two edit paths have different semantics.
func (g *Gateway) UpdateBookmark(ctx context.Context, bm domain.Bookmark) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	bookmarks, err := g.store.LoadBookmarks(ctx)
	if err != nil {
		return err
	}

	for i := range bookmarks {
		if bookmarks[i].ID == bm.ID {
			bookmarks[i] = bm
			return g.store.SaveBookmarks(ctx, bookmarks)
		}
	}
	return nil
}

// GetFolders returns the folder collection.
func (g *Gateway) GetFolders(ctx context.Context) ([]domain.Folder, error) {
	return g.store.LoadFolders(ctx)
}

// SaveFolder upserts a folder by id.
func (g *Gateway) SaveFolder(ctx context.Context, folder domain.Folder) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	folders, err := g.store.LoadFolders(ctx)
	if err != nil {
		return err
	}

	if folder.ID == "" {
		folder.ID = g.newID()
	}

	replaced := false
	for i := range folders {
		if folders[i].ID == folder.ID {
			folders[i] = folder
			replaced = true
			break
		}
	}
	if !replaced {
		folders = append(folders, folder)
	}

	return g.store.SaveFolders(ctx, folders)
}

// DeleteFolder removes a folder, reassigning its bookmarks to the
// default folder and recounting it. Deleting the default folder fails
// with domain.ErrProtectedEntity.
func (g *Gateway) DeleteFolder(ctx context.Context, id string) error {
	if id == domain.DefaultFolderID {
		return domain.ErrProtectedEntity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	folders, err := g.store.LoadFolders(ctx)
	if err != nil {
		return err
	}
	bookmarks, err := g.store.LoadBookmarks(ctx)
	if err != nil {
		return err
	}

	for i := range folders {
		if folders[i].ID == id {
			folders = append(folders[:i], folders[i+1:]...)
			break
		}
	}

	defaultCount := 0
	for i := range bookmarks {
		if bookmarks[i].Folder == id {
			bookmarks[i].Folder = domain.DefaultFolderID
		}
		if bookmarks[i].Folder == domain.DefaultFolderID {
			defaultCount++
		}
	}
	for i := range folders {
		if folders[i].ID == domain.DefaultFolderID {
			folders[i].Count = defaultCount
			break
		}
	}

	if err := g.store.SaveFolders(ctx, folders); err != nil {
		return err
	}
	return g.store.SaveBookmarks(ctx, bookmarks)
}

// CommitSync persists a merged sync result under the gateway's mutex
// and refreshes the badge. The syncer computed everything in memory
// beforehand, so this is the only write of the pass.
func (g *Gateway) CommitSync(ctx context.Context, bookmarks []domain.Bookmark, folders []domain.Folder) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.store.SaveBookmarks(ctx, bookmarks); err != nil {
		return err
	}
	if err := g.store.SaveFolders(ctx, folders); err != nil {
		return err
	}

	g.updateBadge(ctx, len(bookmarks))
	return nil
}

// GetSettings returns the stored settings, or defaults when the key has
// never been written.
func (g *Gateway) GetSettings(ctx context.Context) (domain.Settings, error) {
	settings, ok, err := g.store.LoadSettings(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if !ok {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

// SaveSettings writes the settings object wholesale.
func (g *Gateway) SaveSettings(ctx context.Context, settings domain.Settings) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.SaveSettings(ctx, settings)
}

// updateBadge pushes the formatted total to the badge collaborator.
// Best effort: a badge failure never fails the mutation.
func (g *Gateway) updateBadge(ctx context.Context, count int) {
	if g.badge == nil {
		return
	}
	if err := g.badge.SetText(ctx, badge.Format(count)); err != nil {
		g.logger.Warn("failed to update badge", logger.Error(err))
	}
}

func (g *Gateway) fillDefaults(bm domain.Bookmark) domain.Bookmark {
	if bm.ID == "" {
		bm.ID = g.newID()
	}
	if bm.Folder == "" {
		bm.Folder = domain.DefaultFolderID
	}
	if bm.Tags == nil {
		bm.Tags = []string{}
	}
	if bm.DateAdded.IsZero() {
		bm.DateAdded = g.now()
	}
	if bm.Favicon == "" {
		bm.Favicon = domain.FaviconURL(bm.URL)
	}
	return bm
}

// mergeBookmark lays the incoming fields over the existing record.
// Zero-valued incoming fields keep the existing value; the stored id is
// never replaced, so delete-by-id stays stable across re-saves.
func mergeBookmark(existing, incoming domain.Bookmark) domain.Bookmark {
	merged := existing
	if incoming.Title != "" {
		merged.Title = incoming.Title
	}
	if incoming.Description != "" {
		merged.Description = incoming.Description
	}
	if incoming.Folder != "" {
		merged.Folder = incoming.Folder
	}
	if incoming.Tags != nil {
		merged.Tags = incoming.Tags
	}
	if !incoming.DateAdded.IsZero() {
		merged.DateAdded = incoming.DateAdded
	}
	if incoming.Favicon != "" {
		merged.Favicon = incoming.Favicon
	}
	return merged
}
