// Package dedup remembers recent request fingerprints so repeated
// submissions inside a short window can be rejected.
package dedup

import (
	"context"
	"sync"
	"time"
)

// Store 記錄請求指紋
type Store interface {
	// Seen 若指紋在 window 內出現過回傳 true，否則記錄本次並回傳 false
	Seen(ctx context.Context, fingerprint string, window time.Duration) (bool, error)
	Close() error
}

// MemoryStore 單機記憶體實作
type MemoryStore struct {
	mu       sync.Mutex
	requests map[string]time.Time
	retain   time.Duration
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

// NewMemoryStore 建立記憶體存放，並以 interval 週期清理超過 retain 的記錄
func NewMemoryStore(interval, retain time.Duration) *MemoryStore {
	s := &MemoryStore{
		requests: make(map[string]time.Time),
		retain:   retain,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if interval > 0 {
		go s.janitor(interval)
	}
	return s
}

// Seen 實作 Store
func (s *MemoryStore) Seen(_ context.Context, fingerprint string, window time.Duration) (bool, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.requests[fingerprint]; ok && now.Sub(last) <= window {
		return true, nil
	}
	s.requests[fingerprint] = now
	return false, nil
}

// Len 目前記錄數
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Close 停止清理 goroutine
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evict()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) evict() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, t := range s.requests {
		if now.Sub(t) > s.retain {
			delete(s.requests, k)
		}
	}
}
