package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/linkvault/linkvault/internal/domain"
)

// ExportData returns the entire store content plus an export timestamp
// and version tag. A full snapshot, never filtered.
func (g *Gateway) ExportData(ctx context.Context) (domain.Snapshot, error) {
	bookmarks, err := g.store.LoadBookmarks(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	folders, err := g.store.LoadFolders(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	settings, ok, err := g.store.LoadSettings(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if !ok {
		settings = domain.DefaultSettings()
	}
	tags, err := g.store.LoadTags(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	lastBackup, err := g.store.LoadLastBackup(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}

	return domain.Snapshot{
		Bookmarks:  bookmarks,
		Folders:    folders,
		Settings:   settings,
		Tags:       tags,
		LastBackup: lastBackup,
		ExportDate: g.now(),
		Version:    g.version,
	}, nil
}

// importPayload probes the raw shape before decoding, so a payload with
// a missing or non-array bookmarks field is rejected before any write.
type importPayload struct {
	Bookmarks json.RawMessage `json:"bookmarks"`
	Folders   []domain.Folder `json:"folders"`
}

// ImportData merges an exported snapshot into the store. Existing
// bookmarks win by URL; imported newcomers get fresh ids. Folders merge
// by name so repeated imports cannot pile up duplicate folder names.
func (g *Gateway) ImportData(ctx context.Context, data json.RawMessage) error {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if !isJSONArray(payload.Bookmarks) {
		return fmt.Errorf("%w: bookmarks must be an array", domain.ErrValidation)
	}
	var imported []domain.Bookmark
	if err := json.Unmarshal(payload.Bookmarks, &imported); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

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

	// Merge folders by name first, building a map from the snapshot's
	// folder ids to local ids so imported bookmarks can be re-homed.
	localIDByName := make(map[string]string, len(folders))
	for _, f := range folders {
		localIDByName[f.Name] = f.ID
	}
	importedIDToLocal := make(map[string]string, len(payload.Folders))
	for _, f := range payload.Folders {
		localID, ok := localIDByName[f.Name]
		if !ok {
			localID = g.newID()
			folders = append(folders, domain.Folder{ID: localID, Name: f.Name})
			localIDByName[f.Name] = localID
		}
		importedIDToLocal[f.ID] = localID
	}

	localIDs := make(map[string]struct{}, len(folders))
	for _, f := range folders {
		localIDs[f.ID] = struct{}{}
	}

	byURL := make(map[string]struct{}, len(bookmarks))
	for _, b := range bookmarks {
		byURL[b.URL] = struct{}{}
	}

	for _, b := range imported {
		if _, exists := byURL[b.URL]; exists {
			continue
		}
		b.ID = g.newID()
		if localID, ok := importedIDToLocal[b.Folder]; ok {
			b.Folder = localID
		} else if _, known := localIDs[b.Folder]; !known {
			// Referent folder didn't travel with the snapshot and
			// doesn't exist here: fall back to default.
			b.Folder = domain.DefaultFolderID
		}
		b = g.fillDefaults(b)
		bookmarks = append(bookmarks, b)
		byURL[b.URL] = struct{}{}
	}

	domain.RecountFolders(folders, bookmarks)

	if err := g.store.SaveBookmarks(ctx, bookmarks); err != nil {
		return err
	}
	if err := g.store.SaveFolders(ctx, folders); err != nil {
		return err
	}

	g.updateBadge(ctx, len(bookmarks))
	return nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
