package gateway

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/linkvault/linkvault/internal/domain"
)

// Query filters and orders a GetBookmarks call. All filters compose
// with logical AND.
type Query struct {
	// Folder matches Bookmark.Folder exactly.
	Folder string `json:"folder,omitempty"`
	// Tags matches bookmarks carrying any of the given tags.
	Tags []string `json:"tags,omitempty"`
	// Search is a case-insensitive substring match against title,
	// description, URL or any tag.
	Search string `json:"search,omitempty"`
	// SortBy: "title" for locale-aware ascending title order, anything
	// else sorts by dateAdded descending (newest first).
	SortBy string `json:"sortBy,omitempty"`
}

// GetBookmarks returns the filtered, sorted bookmark collection.
func (g *Gateway) GetBookmarks(ctx context.Context, q Query) ([]domain.Bookmark, error) {
	bookmarks, err := g.store.LoadBookmarks(ctx)
	if err != nil {
		return nil, err
	}

	filtered := bookmarks[:0:0]
	for _, b := range bookmarks {
		if matches(b, q) {
			filtered = append(filtered, b)
		}
	}

	if q.SortBy == "title" {
		c := collate.New(language.Und)
		sort.SliceStable(filtered, func(i, j int) bool {
			return c.CompareString(filtered[i].Title, filtered[j].Title) < 0
		})
	} else {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DateAdded.After(filtered[j].DateAdded)
		})
	}

	return filtered, nil
}

func matches(b domain.Bookmark, q Query) bool {
	if q.Folder != "" && b.Folder != q.Folder {
		return false
	}

	if len(q.Tags) > 0 && !hasAnyTag(b.Tags, q.Tags) {
		return false
	}

	if q.Search != "" {
		term := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(b.Title), term) &&
			!strings.Contains(strings.ToLower(b.Description), term) &&
			!strings.Contains(strings.ToLower(b.URL), term) &&
			!anyTagContains(b.Tags, term) {
			return false
		}
	}

	return true
}

func hasAnyTag(tags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range tags {
			if t == w {
				return true
			}
		}
	}
	return false
}

func anyTagContains(tags []string, term string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}
