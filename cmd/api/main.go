package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/config"
	httpDelivery "github.com/eliperez-dev/UntilEveryCage/internal/delivery/http"
	"github.com/eliperez-dev/UntilEveryCage/internal/delivery/http/handler"
	"github.com/eliperez-dev/UntilEveryCage/internal/domain/repository"
	"github.com/eliperez-dev/UntilEveryCage/internal/metrics"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/logger"
	"github.com/eliperez-dev/UntilEveryCage/internal/repository/cache"
	"github.com/eliperez-dev/UntilEveryCage/internal/repository/feed"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Until Every Cage API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Cache backend: Redis when configured, in-process LRU otherwise
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis cache enabled")
	} else {
		cacheRepo, err = cache.NewMemoryRepository(cfg.Cache.MemoryEntries, log)
		if err != nil {
			log.Fatal("Failed to initialize memory cache", zap.Error(err))
		}
		log.Info("In-process cache enabled", zap.Int("entries", cfg.Cache.MemoryEntries))
	}

	// 4. Metrics
	provider := metrics.Init()

	// 5. Repositories
	feedRepo := feed.NewClient(cfg.Feeds, cacheRepo, cfg.Cache.FeedCacheTTL, provider, log)

	// 6. Use cases
	storeUC := usecase.NewStoreUseCase(feedRepo, log)
	filterUC := usecase.NewFilterUseCase(storeUC, log)
	renderUC := usecase.NewRenderUseCase(cfg.Map, log)
	viewStateUC := usecase.NewViewStateUseCase(log)
	exportUC := usecase.NewExportUseCase(log)
	shareUC := usecase.NewShareUseCase(cacheRepo, cfg.Cache.ShareLinkTTL, log)

	// 7. Load the feeds before serving. Total feed unavailability at
	// startup is fatal; there is no partial-data mode.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 2*cfg.Feeds.PrimaryTimeout)
	if err := storeUC.Load(loadCtx); err != nil {
		cancelLoad()
		log.Fatal("Failed to load data feeds", zap.Error(err))
	}
	cancelLoad()

	// 8. HTTP handlers
	mapHandler := handler.NewMapHandler(filterUC, renderUC, viewStateUC, provider, log)
	statsHandler := handler.NewStatsHandler(filterUC, viewStateUC, log)
	dataHandler := handler.NewDataHandler(filterUC, viewStateUC, log)
	optionsHandler := handler.NewOptionsHandler(storeUC, log)
	exportHandler := handler.NewExportHandler(filterUC, exportUC, viewStateUC, provider, log)
	shareHandler := handler.NewShareHandler(shareUC, viewStateUC, provider, log)

	// 9. HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		storeUC,
		provider,
		mapHandler,
		statsHandler,
		dataHandler,
		optionsHandler,
		exportHandler,
		shareHandler,
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
