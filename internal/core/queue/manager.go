// Package queue bounds how many searches run at once and how many may wait.
package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

var (
	// ErrQueueFull 等待隊列已滿
	ErrQueueFull = errors.New("queue is full")
	// ErrClosed 隊列管理器已關閉
	ErrClosed = errors.New("queue manager is closed")
)

// Status 隊列狀態
type Status struct {
	QueueLength    int `json:"queue_length"`
	Active         int `json:"active"`
	ProcessedCount int `json:"processed_count"`
	MaxQueueSize   int `json:"max_queue_size"`
	Workers        int `json:"workers"`
}

// Manager 隊列管理器
//
// 最多 Workers 個搜尋同時執行，其餘最多 MaxSize 個等待，超過則立即拒絕。
type Manager struct {
	workers   int
	maxSize   int
	slots     chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	waiting   int64
	processed int64
}

// NewManager 創建新的隊列管理器
func NewManager(cfg config.QueueConfig) *Manager {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Manager{
		workers: workers,
		maxSize: cfg.MaxSize,
		slots:   make(chan struct{}, workers),
		done:    make(chan struct{}),
	}
}

// Acquire 取得執行名額，必要時排隊等待
func (m *Manager) Acquire(ctx context.Context) error {
	select {
	case <-m.done:
		return ErrClosed
	default:
	}

	select {
	case m.slots <- struct{}{}:
		return nil
	default:
	}

	if atomic.AddInt64(&m.waiting, 1) > int64(m.maxSize) {
		atomic.AddInt64(&m.waiting, -1)
		common.LogWarn("搜尋隊列已滿",
			zap.Int("max_queue_size", m.maxSize),
			zap.Int("workers", m.workers),
		)
		return ErrQueueFull
	}
	defer atomic.AddInt64(&m.waiting, -1)

	select {
	case m.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return ErrClosed
	}
}

// Release 歸還執行名額
func (m *Manager) Release() {
	select {
	case <-m.slots:
		atomic.AddInt64(&m.processed, 1)
	default:
	}
}

// Status 獲取隊列狀態
func (m *Manager) Status() *Status {
	return &Status{
		QueueLength:    int(atomic.LoadInt64(&m.waiting)),
		Active:         len(m.slots),
		ProcessedCount: int(atomic.LoadInt64(&m.processed)),
		MaxQueueSize:   m.maxSize,
		Workers:        m.workers,
	}
}

// Close 關閉隊列管理器，等待中的請求會收到 ErrClosed
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
}
