package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-finder/internal/api"
	"recipe-finder/internal/core/catalog"
	"recipe-finder/internal/core/dedup"
	"recipe-finder/internal/core/queue"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// 載入設定（含選用的 .env）
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("catalog_base_url", cfg.Catalog.BaseURL),
		zap.Duration("catalog_timeout", cfg.Catalog.Timeout),
		zap.Int("catalog_concurrency", cfg.Catalog.Concurrency),
		zap.Bool("translate", cfg.Search.Translate),
	)

	queueManager := queue.NewManager(cfg.Queue)
	defer queueManager.Close()

	deps := api.Dependencies{
		Catalog: catalog.NewClient(cfg.Catalog),
		Queue:   queueManager,
	}

	// 有設定 Redis 時共用去重記錄，連不上則退回記憶體
	if cfg.Dedup.Enabled && cfg.Dedup.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		store, err := dedup.NewRedisStore(ctx, cfg.Dedup.RedisAddr, cfg.Dedup.RedisDB)
		cancel()
		if err != nil {
			common.LogWarn("Redis 無法使用，改用記憶體去重",
				zap.String("redis_addr", cfg.Dedup.RedisAddr),
				zap.Error(err),
			)
		} else {
			deps.Dedup = store
			defer store.Close()
		}
	}

	router, cleanup, err := api.SetupRouter(cfg, deps)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
	}

	common.LogInfo("Server exited")
}
