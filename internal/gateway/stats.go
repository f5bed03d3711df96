package gateway

import (
	"context"
	"sort"

	"github.com/linkvault/linkvault/internal/domain"
)

const (
	topTagLimit = 10
	recentLimit = 10
)

// GetStats summarizes the collection: totals, the ten most-used tags
// and the ten most recent bookmarks.
func (g *Gateway) GetStats(ctx context.Context) (domain.Stats, error) {
	bookmarks, err := g.store.LoadBookmarks(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	folders, err := g.store.LoadFolders(ctx)
	if err != nil {
		return domain.Stats{}, err
	}

	tagCounts := make(map[string]int)
	for _, b := range bookmarks {
		for _, t := range b.Tags {
			tagCounts[t]++
		}
	}

	topTags := make([]domain.TagCount, 0, len(tagCounts))
	for tag, count := range tagCounts {
		topTags = append(topTags, domain.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(topTags, func(i, j int) bool {
		if topTags[i].Count != topTags[j].Count {
			return topTags[i].Count > topTags[j].Count
		}
		return topTags[i].Tag < topTags[j].Tag
	})
	if len(topTags) > topTagLimit {
		topTags = topTags[:topTagLimit]
	}

	recent := make([]domain.Bookmark, len(bookmarks))
	copy(recent, bookmarks)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].DateAdded.After(recent[j].DateAdded)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return domain.Stats{
		TotalBookmarks:  len(bookmarks),
		TotalFolders:    len(folders),
		TotalTags:       len(tagCounts),
		TopTags:         topTags,
		RecentBookmarks: recent,
	}, nil
}
