// Package catalog talks to the external TheMealDB-compatible recipe catalog.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"recipe-finder/internal/infrastructure/config"
	"recipe-finder/internal/pkg/common"
	"recipe-finder/internal/pkg/metrics"

	"github.com/go-resty/resty/v2"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	filterPath = "/filter.php"
	lookupPath = "/lookup.php"

	opFilter = "filter"
	opLookup = "lookup"
)

var (
	// ErrNotFound 目錄中沒有對應的記錄
	ErrNotFound = errors.New("catalog: no meals found")
	// ErrUpstream 目錄回傳非預期的狀態碼
	ErrUpstream = errors.New("catalog: upstream error")
	// ErrUnavailable 斷路器開啟，呼叫未送出
	ErrUnavailable = errors.New("catalog: circuit open")
)

// Client 食譜目錄客戶端
//
// 每次呼叫都經過限流、斷路器與 resty 的重試，可在多個 goroutine 間共用。
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[*resty.Response]
}

// NewClient 依設定建立目錄客戶端
func NewClient(cfg config.CatalogConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(cfg.Retries).
		AddRetryCondition(shouldRetry)
	if cfg.RetryWait > 0 {
		httpClient.
			SetRetryWaitTime(cfg.RetryWait).
			SetRetryMaxWaitTime(4 * cfg.RetryWait)
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	breaker := gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:        "recipe-catalog",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			// 呼叫端取消不算目錄故障
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			common.LogWarn("目錄斷路器狀態變更",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		http:    httpClient,
		limiter: limiter,
		breaker: breaker,
	}
}

// FilterByIngredient 查詢含有指定食材的食譜，沒有結果時回傳空切片
func (c *Client) FilterByIngredient(ctx context.Context, ingredient string) ([]MealSummary, error) {
	env, err := c.call(ctx, opFilter, filterPath, ingredient)
	if err != nil {
		return nil, err
	}

	meals := make([]MealSummary, 0, len(env.Meals))
	for _, m := range env.Meals {
		summary := toSummary(m)
		if summary.ID == "" {
			continue
		}
		meals = append(meals, summary)
	}
	return meals, nil
}

// LookupByID 取得完整食譜記錄，找不到時回傳 ErrNotFound
func (c *Client) LookupByID(ctx context.Context, id string) (*RecipeDetail, error) {
	env, err := c.call(ctx, opLookup, lookupPath, id)
	if err != nil {
		return nil, err
	}
	if len(env.Meals) == 0 || env.Meals[0] == nil {
		return nil, fmt.Errorf("lookup %s: %w", id, ErrNotFound)
	}
	return toDetail(env.Meals[0]), nil
}

// Ready 斷路器未開啟時視為可用
func (c *Client) Ready() bool {
	return c.breaker.State() != gobreaker.StateOpen
}

// BreakerState 斷路器目前狀態
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

func (c *Client) call(ctx context.Context, operation, path, param string) (*mealsEnvelope, error) {
	start := time.Now()
	env, err := c.fetch(ctx, path, param)
	duration := time.Since(start)

	metrics.RecordCatalogRequest(operation, statusLabel(err), duration.Seconds())
	common.LogCatalogCall(operation, param, duration, err)
	return env, err
}

func (c *Client) fetch(ctx context.Context, path, param string) (*mealsEnvelope, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("catalog rate limit: %w", err)
		}
	}

	resp, err := c.breaker.Execute(func() (*resty.Response, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("i", param).
			Get(path)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return resp, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("catalog request %s: %w", path, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("catalog request %s: %w: status %d", path, ErrUpstream, resp.StatusCode())
	}

	var env mealsEnvelope
	if err := common.ParseJSONBytes(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	return &env, nil
}

// shouldRetry 只重試傳輸錯誤與 5xx
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return !errors.Is(err, context.Canceled)
	}
	return resp != nil && resp.StatusCode() >= http.StatusInternalServerError
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnavailable):
		return "circuit_open"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "error"
	}
}
