package domain

import "time"

// Snapshot is a full export of the store: every persisted key plus an
// export timestamp and version tag. Never filtered.
type Snapshot struct {
	Bookmarks  []Bookmark `json:"bookmarks"`
	Folders    []Folder   `json:"folders"`
	Settings   Settings   `json:"settings"`
	Tags       []string   `json:"tags"`
	LastBackup *time.Time `json:"lastBackup"`
	ExportDate time.Time  `json:"exportDate"`
	Version    string     `json:"version"`
}

// TagCount pairs a tag with the number of bookmarks carrying it.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Stats summarizes the collection for the options dashboard.
type Stats struct {
	TotalBookmarks  int        `json:"totalBookmarks"`
	TotalFolders    int        `json:"totalFolders"`
	TotalTags       int        `json:"totalTags"`
	TopTags         []TagCount `json:"topTags"`
	RecentBookmarks []Bookmark `json:"recentBookmarks"`
}
