package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/linkvault/linkvault/internal/export"
	"github.com/linkvault/linkvault/internal/gateway"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/store"
)

// BackupRunner periodically writes a JSON export snapshot to the backup
// directory while settings.autoBackup is on, recording lastBackup.
type BackupRunner struct {
	gateway  *gateway.Gateway
	store    store.Store
	logger   logger.Logger
	dir      string
	interval time.Duration
	stopCh   chan struct{}
	now      func() time.Time
}

func NewBackupRunner(gw *gateway.Gateway, st store.Store, log logger.Logger, dir string, interval time.Duration) *BackupRunner {
	return &BackupRunner{
		gateway:  gw,
		store:    st,
		logger:   log,
		dir:      dir,
		interval: interval,
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}
}

// Start launches the backup loop.
func (br *BackupRunner) Start(ctx context.Context) error {
	if err := os.MkdirAll(br.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup dir: %w", err)
	}

	ticker := time.NewTicker(br.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := br.RunOnce(ctx); err != nil {
					br.logger.Error("backup failed", logger.Error(err))
				}
			case <-br.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop halts the loop.
func (br *BackupRunner) Stop() {
	close(br.stopCh)
}

// RunOnce performs a single backup pass. Skips silently when autoBackup
// is off.
func (br *BackupRunner) RunOnce(ctx context.Context) error {
	settings, err := br.gateway.GetSettings(ctx)
	if err != nil {
		return err
	}
	if !settings.AutoBackup {
		br.logger.Debug("auto backup disabled, skipping")
		return nil
	}

	snapshot, err := br.gateway.ExportData(ctx)
	if err != nil {
		return err
	}
	data, err := export.JSON(snapshot)
	if err != nil {
		return err
	}

	at := br.now()
	path := filepath.Join(br.dir, fmt.Sprintf("bookmarks-%s.json", at.Format("2006-01-02-150405")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	if err := br.store.SaveLastBackup(ctx, at); err != nil {
		return err
	}

	br.logger.Info("backup written",
		logger.String("path", path),
		logger.Int("bookmarks", len(snapshot.Bookmarks)))
	return nil
}
