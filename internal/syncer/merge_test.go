package syncer

import (
	"fmt"
	"testing"
	"time"

	"github.com/linkvault/linkvault/internal/browser"
	"github.com/linkvault/linkvault/internal/domain"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func defaultFolders() []domain.Folder {
	return []domain.Folder{{ID: domain.DefaultFolderID, Name: "Default"}}
}

func TestMergeAddsNewBookmarks(t *testing.T) {
	when := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	flat := []browser.FlatBookmark{
		{Title: "X", URL: "https://x.example.com", DateAdded: when, FolderName: "Work"},
	}

	res := Merge(flat, nil, defaultFolders(), sequentialIDs())

	if res.New != 1 || res.Skipped != 0 {
		t.Fatalf("New = %d, Skipped = %d, want 1/0", res.New, res.Skipped)
	}
	if len(res.Bookmarks) != 1 {
		t.Fatalf("got %d bookmarks, want 1", len(res.Bookmarks))
	}

	bm := res.Bookmarks[0]
	if !bm.IsFromBrowser {
		t.Error("synced bookmark should be marked IsFromBrowser")
	}
	if bm.Tags == nil || len(bm.Tags) != 0 {
		t.Errorf("synced bookmark tags = %v, want empty non-nil slice", bm.Tags)
	}
	if !bm.DateAdded.Equal(when) {
		t.Errorf("DateAdded = %v, want source timestamp %v", bm.DateAdded, when)
	}

	if len(res.Folders) != 2 {
		t.Fatalf("got %d folders, want 2 (default + Work)", len(res.Folders))
	}
	work := res.Folders[1]
	if work.Name != "Work" || work.Count != 1 {
		t.Errorf("created folder = %+v, want Work with count 1", work)
	}
}

func TestMergeSkipsExistingURLs(t *testing.T) {
	existing := []domain.Bookmark{
		{ID: "local", Title: "Mine", URL: "https://x.example.com", Folder: domain.DefaultFolderID, Description: "kept"},
	}
	flat := []browser.FlatBookmark{
		{Title: "Theirs", URL: "https://x.example.com", FolderName: "Work"},
	}

	res := Merge(flat, existing, defaultFolders(), sequentialIDs())

	if res.New != 0 || res.Skipped != 1 {
		t.Fatalf("New = %d, Skipped = %d, want 0/1", res.New, res.Skipped)
	}
	if len(res.Bookmarks) != 1 {
		t.Fatalf("got %d bookmarks, want 1", len(res.Bookmarks))
	}
	if res.Bookmarks[0].Title != "Mine" || res.Bookmarks[0].Description != "kept" {
		t.Errorf("local bookmark was modified by sync: %+v", res.Bookmarks[0])
	}
	if len(res.Folders) != 1 {
		t.Errorf("got %d folders, want 1 (no folder for a skipped entry)", len(res.Folders))
	}
}

func TestMergeIdempotent(t *testing.T) {
	flat := []browser.FlatBookmark{
		{Title: "X", URL: "https://x.example.com", FolderName: "Work"},
		{Title: "Y", URL: "https://y.example.com", FolderName: "Work"},
	}
	newID := sequentialIDs()

	first := Merge(flat, nil, defaultFolders(), newID)
	if first.New != 2 {
		t.Fatalf("first pass New = %d, want 2", first.New)
	}

	second := Merge(flat, first.Bookmarks, first.Folders, newID)
	if second.New != 0 {
		t.Errorf("second pass New = %d, want 0", second.New)
	}
	if second.Skipped != 2 {
		t.Errorf("second pass Skipped = %d, want 2", second.Skipped)
	}
	if len(second.Bookmarks) != len(first.Bookmarks) {
		t.Errorf("second pass grew the collection: %d -> %d", len(first.Bookmarks), len(second.Bookmarks))
	}
	if len(second.Folders) != len(first.Folders) {
		t.Errorf("second pass grew the folders: %d -> %d", len(first.Folders), len(second.Folders))
	}
}

func TestMergeReservedContainers(t *testing.T) {
	tests := []struct {
		name       string
		folderName string
	}{
		{"top level", ""},
		{"bookmarks bar", "Bookmarks Bar"},
		{"other bookmarks", "Other Bookmarks"},
		{"localized bar", "书签栏"},
		{"localized other", "其他书签"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat := []browser.FlatBookmark{
				{Title: "X", URL: "https://x.example.com", FolderName: tt.folderName},
			}

			res := Merge(flat, nil, defaultFolders(), sequentialIDs())

			if len(res.Folders) != 1 {
				t.Fatalf("reserved container %q created a folder", tt.folderName)
			}
			if res.Bookmarks[0].Folder != domain.DefaultFolderID {
				t.Errorf("bookmark folder = %q, want default", res.Bookmarks[0].Folder)
			}
		})
	}
}

func TestMergeReusesExistingFolderByName(t *testing.T) {
	folders := append(defaultFolders(), domain.Folder{ID: "work", Name: "Work", Count: 0})
	flat := []browser.FlatBookmark{
		{Title: "X", URL: "https://x.example.com", FolderName: "Work"},
	}

	res := Merge(flat, nil, folders, sequentialIDs())

	if len(res.Folders) != 2 {
		t.Fatalf("got %d folders, want 2 (existing Work reused)", len(res.Folders))
	}
	if res.Bookmarks[0].Folder != "work" {
		t.Errorf("bookmark folder = %q, want existing id %q", res.Bookmarks[0].Folder, "work")
	}
	if res.Folders[1].Count != 1 {
		t.Errorf("Work count = %d, want 1", res.Folders[1].Count)
	}
}

func TestMergeTitleFallsBackToURL(t *testing.T) {
	flat := []browser.FlatBookmark{
		{Title: "", URL: "https://untitled.example.com"},
	}

	res := Merge(flat, nil, defaultFolders(), sequentialIDs())

	if res.Bookmarks[0].Title != "https://untitled.example.com" {
		t.Errorf("title = %q, want the URL", res.Bookmarks[0].Title)
	}
}

func TestMergeEmptyTreeIsNoop(t *testing.T) {
	existing := []domain.Bookmark{
		{ID: "1", URL: "https://x.example.com", Folder: domain.DefaultFolderID},
	}
	folders := defaultFolders()

	res := Merge(nil, existing, folders, sequentialIDs())

	if res.New != 0 || res.Skipped != 0 {
		t.Errorf("New = %d, Skipped = %d, want 0/0", res.New, res.Skipped)
	}
	if len(res.Bookmarks) != 1 || len(res.Folders) != 1 {
		t.Errorf("empty tree changed collections: %d bookmarks, %d folders", len(res.Bookmarks), len(res.Folders))
	}
}

func TestMergeRecountsAllFolders(t *testing.T) {
	// A drifted count self-heals on the next pass.
	folders := []domain.Folder{
		{ID: domain.DefaultFolderID, Name: "Default", Count: 42},
	}
	existing := []domain.Bookmark{
		{ID: "1", URL: "https://a.example.com", Folder: domain.DefaultFolderID},
	}
	flat := []browser.FlatBookmark{
		{Title: "B", URL: "https://b.example.com", FolderName: ""},
	}

	res := Merge(flat, existing, folders, sequentialIDs())

	if res.Folders[0].Count != 2 {
		t.Errorf("default count = %d, want 2 after full recount", res.Folders[0].Count)
	}
}
