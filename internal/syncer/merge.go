// Package syncer reconciles a flattened browser bookmark tree against
// the local collections: one-way import, existing local data always
// wins, folder counts recounted from scratch.
package syncer

import (
	"github.com/linkvault/linkvault/internal/browser"
	"github.com/linkvault/linkvault/internal/domain"
)

// reservedContainers are the platform's root pseudo-folders. Bookmarks
// sitting directly in one of these belong to the default folder rather
// than a folder named after the container.
var reservedContainers = map[string]struct{}{
	"":                {},
	"Bookmarks Bar":   {},
	"Other Bookmarks": {},
	"其他书签":            {},
	"书签栏":             {},
}

// Result carries the merged collections plus the pass counters. The
// caller commits; Merge itself never writes.
type Result struct {
	Bookmarks []domain.Bookmark
	Folders   []domain.Folder
	New       int
	Skipped   int
}

// Merge folds the flattened external bookmarks into the local
// collections. Idempotent: a second pass over the same tree inserts
// nothing, because every URL from the first pass now exists locally.
func Merge(flat []browser.FlatBookmark, bookmarks []domain.Bookmark, folders []domain.Folder, newID func() string) Result {
	if len(flat) == 0 {
		return Result{Bookmarks: bookmarks, Folders: folders}
	}

	merged := make([]domain.Bookmark, len(bookmarks), len(bookmarks)+len(flat))
	copy(merged, bookmarks)
	mergedFolders := make([]domain.Folder, len(folders))
	copy(mergedFolders, folders)

	byURL := make(map[string]struct{}, len(merged))
	for _, b := range merged {
		byURL[b.URL] = struct{}{}
	}
	folderIDByName := make(map[string]string, len(mergedFolders))
	for _, f := range mergedFolders {
		folderIDByName[f.Name] = f.ID
	}

	var added, skipped int
	for _, fb := range flat {
		if _, exists := byURL[fb.URL]; exists {
			// Local data is never overwritten by a sync pass.
			skipped++
			continue
		}

		folderID := domain.DefaultFolderID
		if _, reserved := reservedContainers[fb.FolderName]; !reserved {
			id, ok := folderIDByName[fb.FolderName]
			if !ok {
				id = newID()
				mergedFolders = append(mergedFolders, domain.Folder{
					ID:   id,
					Name: fb.FolderName,
				})
				folderIDByName[fb.FolderName] = id
			}
			folderID = id
		}

		title := fb.Title
		if title == "" {
			title = fb.URL
		}

		merged = append(merged, domain.Bookmark{
			ID:            newID(),
			Title:         title,
			URL:           fb.URL,
			Description:   "",
			Folder:        folderID,
			Tags:          []string{},
			DateAdded:     fb.DateAdded,
			Favicon:       domain.FaviconURL(fb.URL),
			IsFromBrowser: true,
		})
		byURL[fb.URL] = struct{}{}
		added++
	}

	domain.RecountFolders(mergedFolders, merged)

	return Result{
		Bookmarks: merged,
		Folders:   mergedFolders,
		New:       added,
		Skipped:   skipped,
	}
}
