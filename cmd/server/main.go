package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"squares/backend/internal/config"
	"squares/backend/internal/db"
	"squares/backend/internal/fetch"
	"squares/backend/internal/handler"
	transport "squares/backend/internal/http"
	"squares/backend/internal/logger"
	"squares/backend/internal/repository"
	"squares/backend/internal/scroll"
	"squares/backend/internal/service"
	"squares/backend/internal/storage"
)

func main() {
	cfg := config.Load()
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger.Init(level)

	locator, err := storage.NewLocator(cfg.Platform)
	if err != nil {
		log.Fatalf("select storage locator: %v", err)
	}
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir, err = locator.DataDir()
		if err != nil {
			log.Fatalf("resolve data dir: %v", err)
		}
	}
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "squares.db")
	}

	conn, err := db.Open(dbPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer conn.Close()

	feedRepo := repository.NewFeedRepository(conn)
	postRepo := repository.NewPostRepository(conn)
	scrollRepo := repository.NewScrollRepository(conn)
	persistService := service.NewPersistenceService(conn, feedRepo, postRepo, scrollRepo)

	registry, store, scr := loadState(persistService)
	scrollService := service.NewScrollService(registry, store, scr)

	client := fetch.NewClient(nil, config.UserAgent)
	feedService := service.NewFeedService(scrollService, persistService, client)
	taskService := service.NewImportTaskService()
	importService := service.NewImportService(scrollService, persistService, taskService)

	feedHandler := handler.NewFeedHandler(feedService)
	scrollHandler := handler.NewScrollHandler(scrollService, persistService)
	importHandler := handler.NewImportHandler(importService, taskService)

	router := transport.NewRouter(feedHandler, scrollHandler, importHandler, cfg.StaticDir)

	poller := fetch.NewPoller(scrollService, persistService, client)
	sched := fetch.NewScheduler(poller, cfg.PollInterval)
	sched.Start()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down", "module", "main", "action", "shutdown", "resource", "server", "result", "ok")
		sched.Stop()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := persistService.Save(ctx, scrollService.Snapshot()); err != nil {
			logger.Error("final snapshot failed", "module", "main", "action", "shutdown", "resource", "server", "result", "failed", "error", err)
		}
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}

// loadState thaws the persisted disk image. A corrupt image aborts the
// load entirely and the app starts from a fresh, empty state instead of
// operating on partial data.
func loadState(persist service.PersistenceService) (*scroll.Registry, *scroll.Store, *scroll.Scroll) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	img, err := persist.Load(ctx)
	if err == nil {
		registry, store, scr, thawErr := scroll.Thaw(img)
		if thawErr == nil {
			logger.Info("state restored", "module", "main", "action", "load", "resource", "scroll", "result", "ok", "feeds", registry.Len(), "posts", store.Len())
			return registry, store, scr
		}
		err = thawErr
	}
	logger.Error("state load failed, starting fresh", "module", "main", "action", "load", "resource", "scroll", "result", "failed", "error", err)

	clock := scroll.NewClock()
	registry := scroll.NewRegistry(clock)
	store := scroll.NewStore(registry, clock)
	return registry, store, scroll.BuildFromFeeds(nil, store)
}
