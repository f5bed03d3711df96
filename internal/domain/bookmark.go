package domain

import "time"

// DefaultFolderID is the reserved folder every installation carries.
// It can never be deleted and absorbs bookmarks whose folder goes away.
const DefaultFolderID = "default"

// Bookmark is a saved URL record. The URL acts as the dedup key: the
// collection never holds two bookmarks with the same URL.
type Bookmark struct {
	// ID is the canonical unique identifier, opaque to callers.
	ID string `json:"id"`

	// Title is the display title. Falls back to the URL when a synced
	// browser entry has no title.
	Title string `json:"title"`

	// URL is the full address and the uniqueness constraint for
	// save/merge operations.
	URL string `json:"url"`

	// Description is free-form user text.
	Description string `json:"description"`

	// Folder references Folder.ID. Always set; DefaultFolderID when the
	// bookmark has no explicit folder.
	Folder string `json:"folder"`

	// Tags are user labels, matched any-of by queries.
	Tags []string `json:"tags"`

	// DateAdded is when the bookmark was created, or the source
	// timestamp for entries imported from the browser.
	DateAdded time.Time `json:"dateAdded"`

	// Favicon is the icon URL derived from the bookmark's host.
	Favicon string `json:"favicon"`

	// IsFromBrowser marks entries created by a browser-tree sync pass.
	IsFromBrowser bool `json:"isFromBrowser,omitempty"`
}

// Folder is a named grouping of bookmarks.
type Folder struct {
	ID string `json:"id"`

	Name string `json:"name"`

	// Count mirrors the number of bookmarks whose Folder field equals
	// this folder's ID. Maintained by the gateway and recounted from
	// scratch by every sync pass.
	Count int `json:"count"`
}

// RecountFolders rewrites every folder's Count from the given bookmark
// collection. A full recount, not a delta, so prior drift self-heals.
func RecountFolders(folders []Folder, bookmarks []Bookmark) {
	perFolder := make(map[string]int, len(folders))
	for _, b := range bookmarks {
		perFolder[b.Folder]++
	}
	for i := range folders {
		folders[i].Count = perFolder[folders[i].ID]
	}
}
