package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/linkvault/linkvault/internal/badge"
	"github.com/linkvault/linkvault/internal/browser"
	"github.com/linkvault/linkvault/internal/config"
	"github.com/linkvault/linkvault/internal/dispatcher"
	"github.com/linkvault/linkvault/internal/gateway"
	"github.com/linkvault/linkvault/internal/httpserver"
	"github.com/linkvault/linkvault/internal/httpserver/deps"
	"github.com/linkvault/linkvault/internal/logger"
	"github.com/linkvault/linkvault/internal/redis"
	"github.com/linkvault/linkvault/internal/scheduler"
	"github.com/linkvault/linkvault/internal/seed"
	redisstore "github.com/linkvault/linkvault/internal/store/redis"
	"github.com/linkvault/linkvault/internal/syncer"
	"github.com/linkvault/linkvault/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	syncRunner  *scheduler.SyncRunner
	backup      *scheduler.BackupRunner
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis first - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}

	store := redisstore.NewStore(redisClient)

	// First-run initialization, optionally from a seed file
	seedCfg := seed.Defaults()
	if cfg.SeedFile != "" {
		loaded, err := seed.Load(cfg.SeedFile)
		if err != nil {
			loggerClient.Warn("failed to load seed file, using defaults",
				logger.String("file", cfg.SeedFile),
				logger.Error(err))
		} else {
			seedCfg = loaded
		}
	}
	if err := seed.Initialize(context.Background(), store, seedCfg, loggerClient); err != nil {
		loggerClient.Errorf("Failed to initialize store: %v", err)
		os.Exit(1)
	}

	badgeSetter := badge.NewLogSetter(loggerClient)
	gw := gateway.New(store, badgeSetter, loggerClient, version.Version)

	// Browser tree source is optional; without it, sync actions fail
	// with a capability error and the sync runner stays off.
	var provider browser.TreeProvider
	var syncTrigger chan struct{}
	if cfg.BrowserTreeFile != "" {
		loggerClient.Info("browser tree source configured",
			logger.String("file", cfg.BrowserTreeFile))
		provider = browser.NewFileProvider(cfg.BrowserTreeFile)
		syncTrigger = make(chan struct{}, 1)
	} else {
		loggerClient.Info("no browser tree source configured, sync disabled")
	}
	sy := syncer.New(provider, store, gw, loggerClient)

	var syncRunner *scheduler.SyncRunner
	if provider != nil {
		syncRunner = scheduler.NewSyncRunner(sy, loggerClient, cfg.SyncInterval, syncTrigger)
	}

	backup := scheduler.NewBackupRunner(gw, store, loggerClient, cfg.BackupDir, cfg.BackupInterval)

	disp := dispatcher.New(gw, sy, store, loggerClient)

	d := deps.Deps{
		Logger:      loggerClient,
		StartTime:   time.Now(),
		Version:     version.Version,
		Commit:      version.Commit,
		BuildDate:   version.BuildDate,
		GoVersion:   version.GoVersion,
		Dispatcher:  disp,
		Store:       store,
		SyncTrigger: syncTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		syncRunner:  syncRunner,
		backup:      backup,
	}
}

func (a *App) Run() error {
	a.logger.Infof("Starting LinkVault %s on %s", version.Version, a.cfg.ListenPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.syncRunner != nil {
		if err := a.syncRunner.Start(ctx); err != nil {
			return fmt.Errorf("failed to start sync runner: %w", err)
		}
		a.logger.Info("browser sync runner started",
			logger.Duration("interval", a.cfg.SyncInterval))
	}

	if err := a.backup.Start(ctx); err != nil {
		return fmt.Errorf("failed to start backup runner: %w", err)
	}
	a.logger.Info("backup runner started",
		logger.Duration("interval", a.cfg.BackupInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.syncRunner != nil {
		a.syncRunner.Stop()
	}
	a.backup.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	a.logger.Info("LinkVault stopped cleanly")
	return nil
}
