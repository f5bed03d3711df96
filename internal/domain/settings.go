package domain

// Settings is the flat configuration object read and written wholesale
// under the settings store key.
type Settings struct {
	Theme            string `json:"theme"`        // "light" | "dark" | "auto"
	ViewMode         string `json:"viewMode"`     // "card" | "list" | "grid"
	ItemsPerPage     int    `json:"itemsPerPage"` // positive
	ShowDescriptions bool   `json:"showDescriptions"`
	AutoBackup       bool   `json:"autoBackup"`
	SyncEnabled      bool   `json:"syncEnabled"`
}

// DefaultSettings returns the values written on first install.
func DefaultSettings() Settings {
	return Settings{
		Theme:            "light",
		ViewMode:         "card",
		ItemsPerPage:     20,
		ShowDescriptions: true,
		AutoBackup:       true,
		SyncEnabled:      false,
	}
}
