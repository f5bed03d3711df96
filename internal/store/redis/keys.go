package redis

const (
	// KeyBookmarks holds the full bookmark collection as one JSON array.
	KeyBookmarks = "linkvault:bookmarks"
	// KeyFolders holds the full folder collection as one JSON array.
	KeyFolders = "linkvault:folders"
	// KeySettings holds the settings object.
	KeySettings = "linkvault:settings"
	// KeyTags is reserved for the global tag list.
	KeyTags = "linkvault:tags"
	// KeyLastBackup holds the timestamp of the last automatic backup.
	KeyLastBackup = "linkvault:lastBackup"
)
