// Package health exposes liveness, readiness and status endpoints.
package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-finder/internal/core/queue"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QueueStatusProvider 提供搜尋隊列狀態
type QueueStatusProvider interface {
	Status() *queue.Status
}

// CatalogProbe 回報外部目錄是否可用
type CatalogProbe interface {
	Ready() bool
	BreakerState() string
}

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Catalog   map[string]interface{} `json:"catalog"`
	Queue     *queue.Status          `json:"queue,omitempty"`
}

// Handler 健康檢查處理器
type Handler struct {
	version string
	queue   QueueStatusProvider
	catalog CatalogProbe
}

// NewHandler 創建健康檢查處理器，queue 可為 nil
func NewHandler(version string, q QueueStatusProvider, catalog CatalogProbe) *Handler {
	return &Handler{
		version: version,
		queue:   q,
		catalog: catalog,
	}
}

// HealthCheck 健康檢查，目錄斷路器開啟時狀態為 degraded
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	status := "ok"
	if !h.catalog.Ready() {
		status = "degraded"
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   h.version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
		Catalog: map[string]interface{}{
			"ready":   h.catalog.Ready(),
			"breaker": h.catalog.BreakerState(),
		},
	}
	if h.queue != nil {
		response.Queue = h.queue.Status()
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("status", status),
	)

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 目錄斷路器未開啟時就緒
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if !h.catalog.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not_ready",
			"breaker": h.catalog.BreakerState(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
