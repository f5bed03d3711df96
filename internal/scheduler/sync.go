// Package scheduler hosts the periodic workers: browser-bookmark sync
// and automatic backups.
package scheduler

import (
	"context"
	"time"

	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/syncer"
)

// SyncRunner re-runs the browser-bookmark sync on an interval, and
// immediately when poked through the manual trigger channel.
type SyncRunner struct {
	syncer        *syncer.Syncer
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewSyncRunner creates a sync runner. manualTrigger may be shared with
// the HTTP surface so a reload endpoint can force a pass.
func NewSyncRunner(sy *syncer.Syncer, log logger.Logger, interval time.Duration, manualTrigger chan struct{}) *SyncRunner {
	return &SyncRunner{
		syncer:        sy,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start launches the periodic loop. The initial pass is best effort:
// the browser export may simply not exist yet.
func (sr *SyncRunner) Start(ctx context.Context) error {
	if _, err := sr.syncer.Sync(ctx); err != nil {
		sr.logger.Warn("initial browser sync failed", logger.Error(err))
	}

	ticker := time.NewTicker(sr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sr.run(ctx)
			case <-sr.manualTrigger:
				sr.logger.Info("manual browser sync triggered")
				sr.run(ctx)
			case <-sr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop halts the loop.
func (sr *SyncRunner) Stop() {
	close(sr.stopCh)
}

func (sr *SyncRunner) run(ctx context.Context) {
	report, err := sr.syncer.Sync(ctx)
	if err != nil {
		sr.logger.Error("scheduled browser sync failed", logger.Error(err))
		return
	}
	sr.logger.Debug("scheduled browser sync done",
		logger.Int("new", report.New),
		logger.Int("skipped", report.Skipped))
}
