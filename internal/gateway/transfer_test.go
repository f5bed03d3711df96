package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/linkvault/linkvault/internal/domain"
)

func TestExportDataSnapshot(t *testing.T) {
	g, st, _ := newTestGateway(t)
	ctx := context.Background()

	if err := g.SaveBookmark(ctx, domain.Bookmark{URL: "https://x.example.com", Folder: "work"}); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveTags(ctx, []string{"go"}); err != nil {
		t.Fatal(err)
	}
	backupAt := testNow.Add(-time.Hour)
	if err := st.SaveLastBackup(ctx, backupAt); err != nil {
		t.Fatal(err)
	}

	snapshot, err := g.ExportData(ctx)
	if err != nil {
		t.Fatalf("ExportData() error = %v", err)
	}

	if len(snapshot.Bookmarks) != 1 || len(snapshot.Folders) != 2 {
		t.Errorf("snapshot holds %d bookmarks / %d folders, want 1 / 2", len(snapshot.Bookmarks), len(snapshot.Folders))
	}
	if snapshot.Settings != domain.DefaultSettings() {
		t.Errorf("snapshot settings = %+v, want defaults when never written", snapshot.Settings)
	}
	if len(snapshot.Tags) != 1 {
		t.Errorf("snapshot tags = %v, want [go]", snapshot.Tags)
	}
	if snapshot.LastBackup == nil || !snapshot.LastBackup.Equal(backupAt) {
		t.Errorf("snapshot lastBackup = %v, want %v", snapshot.LastBackup, backupAt)
	}
	if !snapshot.ExportDate.Equal(testNow) {
		t.Errorf("ExportDate = %v, want %v", snapshot.ExportDate, testNow)
	}
	if snapshot.Version != "test" {
		t.Errorf("Version = %q, want %q", snapshot.Version, "test")
	}
}

func TestImportDataRejectsNonArrayBookmarks(t *testing.T) {
	g, st, _ := newTestGateway(t)
	ctx := context.Background()

	payloads := []string{
		`{"bookmarks":"not-an-array"}`,
		`{"bookmarks":{"id":"1"}}`,
		`{"folders":[]}`,
		`not json at all`,
	}

	for _, payload := range payloads {
		err := g.ImportData(ctx, json.RawMessage(payload))
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("ImportData(%s) error = %v, want ErrValidation", payload, err)
		}
	}

	bookmarks, _ := st.LoadBookmarks(ctx)
	if len(bookmarks) != 0 {
		t.Errorf("rejected imports wrote %d bookmarks, want 0", len(bookmarks))
	}
}

func TestImportDataMergesByURL(t *testing.T) {
	g, st, setter := newTestGateway(t)
	ctx := context.Background()

	if err := g.SaveBookmark(ctx, domain.Bookmark{
		Title: "Mine", URL: "https://x.example.com", Folder: "work",
	}); err != nil {
		t.Fatal(err)
	}

	payload := `{
		"bookmarks": [
			{"id":"theirs-1","title":"Theirs","url":"https://x.example.com","folder":"f-1"},
			{"id":"theirs-2","title":"New","url":"https://new.example.com","folder":"f-1"}
		],
		"folders": [
			{"id":"f-1","name":"Imported","count":2}
		]
	}`

	if err := g.ImportData(ctx, json.RawMessage(payload)); err != nil {
		t.Fatalf("ImportData() error = %v", err)
	}

	bookmarks, _ := st.LoadBookmarks(ctx)
	if len(bookmarks) != 2 {
		t.Fatalf("got %d bookmarks, want 2 (duplicate URL skipped)", len(bookmarks))
	}
	if bookmarks[0].Title != "Mine" {
		t.Errorf("existing bookmark overwritten: %+v", bookmarks[0])
	}

	imported := bookmarks[1]
	if imported.ID == "theirs-2" {
		t.Error("imported bookmark kept its snapshot id, want a fresh one")
	}

	folders, _ := st.LoadFolders(ctx)
	if len(folders) != 3 {
		t.Fatalf("got %d folders, want 3 (Imported added once)", len(folders))
	}
	importedFolder := folders[2]
	if importedFolder.Name != "Imported" {
		t.Fatalf("third folder = %+v, want Imported", importedFolder)
	}
	if imported.Folder != importedFolder.ID {
		t.Errorf("imported bookmark folder = %q, want re-homed to %q", imported.Folder, importedFolder.ID)
	}
	if importedFolder.Count != 1 {
		t.Errorf("Imported count = %d, want recounted 1", importedFolder.Count)
	}
	if setter.Text != "2" {
		t.Errorf("badge = %q, want %q", setter.Text, "2")
	}
}

func TestImportDataRepeatedIsIdempotent(t *testing.T) {
	g, st, _ := newTestGateway(t)
	ctx := context.Background()

	payload := `{
		"bookmarks": [{"id":"a","title":"X","url":"https://x.example.com","folder":"f-1"}],
		"folders": [{"id":"f-1","name":"Imported"}]
	}`

	if err := g.ImportData(ctx, json.RawMessage(payload)); err != nil {
		t.Fatal(err)
	}
	if err := g.ImportData(ctx, json.RawMessage(payload)); err != nil {
		t.Fatal(err)
	}

	bookmarks, _ := st.LoadBookmarks(ctx)
	if len(bookmarks) != 1 {
		t.Errorf("got %d bookmarks after double import, want 1", len(bookmarks))
	}
	folders, _ := st.LoadFolders(ctx)
	if len(folders) != 3 {
		t.Errorf("got %d folders after double import, want 3", len(folders))
	}
}

func TestImportDataUnknownFolderFallsBackToDefault(t *testing.T) {
	g, st, _ := newTestGateway(t)
	ctx := context.Background()

	// The referenced folder neither travels with the snapshot nor
	// exists locally.
	payload := `{"bookmarks":[{"id":"a","title":"X","url":"https://x.example.com","folder":"ghost"}],"folders":[]}`

	if err := g.ImportData(ctx, json.RawMessage(payload)); err != nil {
		t.Fatalf("ImportData() error = %v", err)
	}

	bookmarks, _ := st.LoadBookmarks(ctx)
	if bookmarks[0].Folder != domain.DefaultFolderID {
		t.Errorf("folder = %q, want default fallback", bookmarks[0].Folder)
	}
}
