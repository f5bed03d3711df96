package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/store/memory"
)

func TestInitializeWritesDefaults(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()

	if err := Initialize(ctx, st, Defaults(), logger.Nop()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	folders, _ := st.LoadFolders(ctx)
	if len(folders) != 3 {
		t.Fatalf("got %d folders, want 3", len(folders))
	}
	if folders[0].ID != domain.DefaultFolderID {
		t.Errorf("first folder = %q, want default", folders[0].ID)
	}

	settings, ok, _ := st.LoadSettings(ctx)
	if !ok {
		t.Fatal("settings not written")
	}
	if settings != domain.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}

	bookmarks, _ := st.LoadBookmarks(ctx)
	if bookmarks == nil || len(bookmarks) != 0 {
		t.Errorf("bookmarks = %v, want empty", bookmarks)
	}
}

func TestInitializeSkipsExistingStore(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()

	custom := domain.Settings{Theme: "dark", ViewMode: "list", ItemsPerPage: 5}
	if err := st.SaveSettings(ctx, custom); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveFolders(ctx, []domain.Folder{{ID: "mine", Name: "Mine"}}); err != nil {
		t.Fatal(err)
	}

	if err := Initialize(ctx, st, Defaults(), logger.Nop()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	settings, _, _ := st.LoadSettings(ctx)
	if settings != custom {
		t.Errorf("settings overwritten: %+v", settings)
	}
	folders, _ := st.LoadFolders(ctx)
	if len(folders) != 1 || folders[0].ID != "mine" {
		t.Errorf("folders overwritten: %+v", folders)
	}
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	data := `
folders:
  - id: research
    name: Research
  - name: Misc
settings:
  theme: dark
  itemsPerPage: 50
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Folders) != 2 {
		t.Fatalf("got %d folders, want 2", len(cfg.Folders))
	}
	if cfg.Settings == nil || cfg.Settings.Theme == nil || *cfg.Settings.Theme != "dark" {
		t.Errorf("settings theme not parsed: %+v", cfg.Settings)
	}
	if cfg.Settings.ShowDescriptions != nil {
		t.Error("unset field should stay nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() on missing file returned nil error")
	}
}

func TestInitializeForcesDefaultFolder(t *testing.T) {
	st := memory.NewStore()
	ctx := context.Background()

	cfg := Config{Folders: []FolderSeed{{ID: "research", Name: "Research"}}}
	if err := Initialize(ctx, st, cfg, logger.Nop()); err != nil {
		t.Fatal(err)
	}

	folders, _ := st.LoadFolders(ctx)
	if len(folders) != 2 {
		t.Fatalf("got %d folders, want 2 (default prepended)", len(folders))
	}
	if folders[0].ID != domain.DefaultFolderID {
		t.Errorf("first folder = %q, want forced default", folders[0].ID)
	}
}

func TestSeedSettingsOverlay(t *testing.T) {
	dark := "dark"
	off := false
	cfg := Config{Settings: &SettingsSeed{Theme: &dark, AutoBackup: &off}}

	settings := cfg.settings()
	if settings.Theme != "dark" {
		t.Errorf("theme = %q, want dark", settings.Theme)
	}
	if settings.AutoBackup {
		t.Error("autoBackup = true, want overridden false")
	}
	// Untouched fields keep their defaults.
	if settings.ItemsPerPage != 20 || settings.ViewMode != "card" {
		t.Errorf("defaults disturbed: %+v", settings)
	}
}
