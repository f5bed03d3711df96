// Package seed initializes the store on first install: default folders
// and settings, optionally overridden by a YAML seed file.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/store"
)

// Config is the seed file schema.
type Config struct {
	Folders  []FolderSeed  `yaml:"folders"`
	Settings *SettingsSeed `yaml:"settings"`
}

// FolderSeed declares one initial folder. ID is optional; the reserved
// default folder is created regardless of what the file says.
type FolderSeed struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// SettingsSeed mirrors domain.Settings with yaml tags. Nil fields fall
// back to the built-in defaults.
type SettingsSeed struct {
	Theme            *string `yaml:"theme"`
	ViewMode         *string `yaml:"viewMode"`
	ItemsPerPage     *int    `yaml:"itemsPerPage"`
	ShowDescriptions *bool   `yaml:"showDescriptions"`
	AutoBackup       *bool   `yaml:"autoBackup"`
	SyncEnabled      *bool   `yaml:"syncEnabled"`
}

// Load parses a seed file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}
	return cfg, nil
}

// Defaults returns the built-in first-install data: the reserved
// default folder plus work/personal, and default settings.
func Defaults() Config {
	return Config{
		Folders: []FolderSeed{
			{ID: domain.DefaultFolderID, Name: "Default"},
			{ID: "work", Name: "Work"},
			{ID: "personal", Name: "Personal"},
		},
	}
}

// Initialize writes the seed data if the store has never been set up.
// Already-initialized stores (settings key present) are left untouched.
func Initialize(ctx context.Context, st store.Store, cfg Config, log logger.Logger) error {
	_, ok, err := st.LoadSettings(ctx)
	if err != nil {
		return err
	}
	if ok {
		log.Debug("store already initialized, skipping seed")
		return nil
	}

	folders := cfg.folders()
	if err := st.SaveFolders(ctx, folders); err != nil {
		return err
	}
	if err := st.SaveSettings(ctx, cfg.settings()); err != nil {
		return err
	}
	if err := st.SaveBookmarks(ctx, []domain.Bookmark{}); err != nil {
		return err
	}
	if err := st.SaveTags(ctx, []string{}); err != nil {
		return err
	}

	log.Info("store initialized with seed data",
		logger.Int("folders", len(folders)))
	return nil
}

// folders materializes the seed folders, forcing the reserved default
// folder to exist exactly once and generating missing ids.
func (c Config) folders() []domain.Folder {
	seeds := c.Folders
	if len(seeds) == 0 {
		seeds = Defaults().Folders
	}

	folders := make([]domain.Folder, 0, len(seeds)+1)
	hasDefault := false
	for _, s := range seeds {
		id := s.ID
		if id == "" {
			id = domain.NewID()
		}
		if id == domain.DefaultFolderID {
			if hasDefault {
				continue
			}
			hasDefault = true
		}
		folders = append(folders, domain.Folder{ID: id, Name: s.Name})
	}
	if !hasDefault {
		folders = append([]domain.Folder{{ID: domain.DefaultFolderID, Name: "Default"}}, folders...)
	}
	return folders
}

func (c Config) settings() domain.Settings {
	settings := domain.DefaultSettings()
	s := c.Settings
	if s == nil {
		return settings
	}
	if s.Theme != nil {
		settings.Theme = *s.Theme
	}
	if s.ViewMode != nil {
		settings.ViewMode = *s.ViewMode
	}
	if s.ItemsPerPage != nil {
		settings.ItemsPerPage = *s.ItemsPerPage
	}
	if s.ShowDescriptions != nil {
		settings.ShowDescriptions = *s.ShowDescriptions
	}
	if s.AutoBackup != nil {
		settings.AutoBackup = *s.AutoBackup
	}
	if s.SyncEnabled != nil {
		settings.SyncEnabled = *s.SyncEnabled
	}
	return settings
}
