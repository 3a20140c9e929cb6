// Package api wires the HTTP surface of recipe-finder.
package api

import (
	"fmt"
	"time"

	"recipe-finder/internal/api/handlers/health"
	recipeHandler "recipe-finder/internal/api/handlers/recipe"
	"recipe-finder/internal/api/middleware"
	"recipe-finder/internal/core/catalog"
	"recipe-finder/internal/core/dedup"
	"recipe-finder/internal/core/queue"
	recipeService "recipe-finder/internal/core/recipe"
	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const dedupCleanupInterval = 10 * time.Minute

// Dependencies 路由使用的外部資源，Dedup 為 nil 時使用記憶體存放
type Dependencies struct {
	Catalog *catalog.Client
	Queue   *queue.Manager
	Dedup   dedup.Store
}

// SetupRouter 設置路由，回傳的 cleanup 停止路由建立的背景清理 goroutine
func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, func(), error) {
	if deps.Catalog == nil {
		return nil, nil, fmt.Errorf("catalog client is required")
	}
	if deps.Queue == nil {
		return nil, nil, fmt.Errorf("queue manager is required")
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery(cfg.App.IsProduction()))
	router.Use(middleware.Logger())
	router.Use(requestid.New(requestid.WithGenerator(common.GenerateUUID)))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(middleware.Metrics())
	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	searchSvc := recipeService.NewService(deps.Catalog, deps.Queue, cfg)
	recipes := recipeHandler.NewHandler(searchSvc, cfg.App.IsProduction())
	healthHandler := health.NewHandler(cfg.App.Version, deps.Queue, deps.Catalog)

	// 搜尋專用中間件
	var (
		searchChain []gin.HandlerFunc
		closers     []func()
	)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		closers = append(closers, limiter.Close)
		searchChain = append(searchChain, limiter.Middleware())
	}
	if cfg.Dedup.Enabled {
		store := deps.Dedup
		if store == nil {
			memStore := dedup.NewMemoryStore(dedupCleanupInterval, 10*cfg.Dedup.Window)
			closers = append(closers, func() { _ = memStore.Close() })
			store = memStore
		}
		searchChain = append(searchChain, middleware.Deduplication(store, cfg.Dedup.Window))
	}
	cleanup := func() {
		for _, c := range closers {
			c()
		}
	}
	searchChain = append(searchChain, recipes.HandleSearchByIngredients)

	// 健康檢查與指標
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1/recipes")
	{
		v1.POST("/ingredients", searchChain...)
		v1.GET("/random", recipes.HandleRandom)
		v1.GET("/random/:count", recipes.HandleRandom)
	}

	// 舊版客戶端路徑
	legacy := router.Group("/api/recipes")
	{
		legacy.POST("/ingredients", searchChain...)
		legacy.GET("/random", recipes.HandleRandom)
		legacy.GET("/random/:count", recipes.HandleRandom)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Bool("dedup", cfg.Dedup.Enabled),
		zap.Bool("translate", cfg.Search.Translate),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, cleanup, nil
}
