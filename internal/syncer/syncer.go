package syncer

import (
	"context"
	"fmt"

	"github.com/linkvault/linkvault/internal/browser"
	"github.com/linkvault/linkvault/internal/domain"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/store"
)

// Committer applies a merged sync result to storage. Implemented by the
// mutation gateway so sync commits share its serialization and badge
// upkeep.
type Committer interface {
	CommitSync(ctx context.Context, bookmarks []domain.Bookmark, folders []domain.Folder) error
}

// Report summarizes one sync pass.
type Report struct {
	New     int `json:"new"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// Syncer runs the browser-bookmark import end to end: fetch tree,
// flatten, merge in memory, then commit. A provider failure aborts
// before any write, so partial syncs cannot happen.
type Syncer struct {
	provider  browser.TreeProvider
	store     store.Store
	committer Committer
	logger    logger.Logger
	newID     func() string
}

// New creates a Syncer. provider may be nil when no tree source is
// configured; Sync then fails with a platform-capability error.
func New(provider browser.TreeProvider, st store.Store, committer Committer, log logger.Logger) *Syncer {
	return &Syncer{
		provider:  provider,
		store:     st,
		committer: committer,
		logger:    log,
		newID:     domain.NewID,
	}
}

// Available reports whether a tree source is configured.
func (s *Syncer) Available() bool {
	return s.provider != nil
}

// Probe checks that the tree source can actually be read, without
// touching the store. Backs the debugPermissions report.
func (s *Syncer) Probe(ctx context.Context) error {
	if s.provider == nil {
		return fmt.Errorf("%w: no tree source configured", domain.ErrPlatformCapability)
	}
	_, err := s.provider.Tree(ctx)
	return err
}

// Sync performs one import pass.
func (s *Syncer) Sync(ctx context.Context) (Report, error) {
	if s.provider == nil {
		return Report{}, fmt.Errorf("%w: no tree source configured", domain.ErrPlatformCapability)
	}

	tree, err := s.provider.Tree(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to fetch bookmark tree: %w", err)
	}

	flat := browser.Extract(tree)
	if len(flat) == 0 {
		// Nothing in the browser: a no-op success, not an error.
		s.logger.Info("sync found no browser bookmarks")
		bookmarks, err := s.store.LoadBookmarks(ctx)
		if err != nil {
			return Report{}, err
		}
		return Report{Total: len(bookmarks)}, nil
	}

	bookmarks, err := s.store.LoadBookmarks(ctx)
	if err != nil {
		return Report{}, err
	}
	folders, err := s.store.LoadFolders(ctx)
	if err != nil {
		return Report{}, err
	}

	res := Merge(flat, bookmarks, folders, s.newID)

	if err := s.committer.CommitSync(ctx, res.Bookmarks, res.Folders); err != nil {
		return Report{}, fmt.Errorf("failed to commit sync: %w", err)
	}

	s.logger.Info("browser bookmark sync complete",
		logger.Int("new", res.New),
		logger.Int("skipped", res.Skipped),
		logger.Int("total", len(res.Bookmarks)))

	return Report{New: res.New, Skipped: res.Skipped, Total: len(res.Bookmarks)}, nil
}
