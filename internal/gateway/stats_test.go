package gateway

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/linkvault/linkvault/internal/domain"
)

func TestGetStats(t *testing.T) {
	g, st, _ := newTestGateway(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	bookmarks := []domain.Bookmark{
		{ID: "1", URL: "https://a.example.com", Tags: []string{"go", "reading"}, DateAdded: base},
		{ID: "2", URL: "https://b.example.com", Tags: []string{"go"}, DateAdded: base.Add(time.Hour)},
		{ID: "3", URL: "https://c.example.com", Tags: []string{"cooking"}, DateAdded: base.Add(2 * time.Hour)},
	}
	if err := st.SaveBookmarks(ctx, bookmarks); err != nil {
		t.Fatal(err)
	}

	stats, err := g.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}

	if stats.TotalBookmarks != 3 || stats.TotalFolders != 2 || stats.TotalTags != 3 {
		t.Errorf("totals = %d/%d/%d, want 3/2/3", stats.TotalBookmarks, stats.TotalFolders, stats.TotalTags)
	}

	if len(stats.TopTags) != 3 {
		t.Fatalf("got %d top tags, want 3", len(stats.TopTags))
	}
	if stats.TopTags[0].Tag != "go" || stats.TopTags[0].Count != 2 {
		t.Errorf("top tag = %+v, want go x2", stats.TopTags[0])
	}
	// Ties broken alphabetically.
	if stats.TopTags[1].Tag != "cooking" || stats.TopTags[2].Tag != "reading" {
		t.Errorf("tie order = %q, %q, want cooking, reading", stats.TopTags[1].Tag, stats.TopTags[2].Tag)
	}

	if len(stats.RecentBookmarks) != 3 {
		t.Fatalf("got %d recent, want 3", len(stats.RecentBookmarks))
	}
	if stats.RecentBookmarks[0].ID != "3" {
		t.Errorf("most recent = %q, want 3", stats.RecentBookmarks[0].ID)
	}
}

func TestGetStatsLimits(t *testing.T) {
	g, st, _ := newTestGateway(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	bookmarks := make([]domain.Bookmark, 0, 15)
	for i := 0; i < 15; i++ {
		bookmarks = append(bookmarks, domain.Bookmark{
			ID:        fmt.Sprintf("b%d", i),
			URL:       fmt.Sprintf("https://b%d.example.com", i),
			Tags:      []string{fmt.Sprintf("tag%02d", i)},
			DateAdded: base.Add(time.Duration(i) * time.Minute),
		})
	}
	if err := st.SaveBookmarks(ctx, bookmarks); err != nil {
		t.Fatal(err)
	}

	stats, err := g.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if len(stats.TopTags) != 10 {
		t.Errorf("got %d top tags, want capped at 10", len(stats.TopTags))
	}
	if len(stats.RecentBookmarks) != 10 {
		t.Errorf("got %d recent, want capped at 10", len(stats.RecentBookmarks))
	}
	if stats.RecentBookmarks[0].ID != "b14" {
		t.Errorf("most recent = %q, want b14", stats.RecentBookmarks[0].ID)
	}
	if stats.TotalBookmarks != 15 || stats.TotalTags != 15 {
		t.Errorf("totals = %d bookmarks / %d tags, want 15/15 uncapped", stats.TotalBookmarks, stats.TotalTags)
	}
}

func TestGetStatsEmpty(t *testing.T) {
	g, _, _ := newTestGateway(t)

	stats, err := g.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.TotalBookmarks != 0 || stats.TotalTags != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
	if len(stats.TopTags) != 0 || len(stats.RecentBookmarks) != 0 {
		t.Errorf("empty stats carry entries: %+v", stats)
	}
}
