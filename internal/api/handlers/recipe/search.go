// Package recipe serves the ingredient search and sample recipe endpoints.
package recipe

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"recipe-finder/internal/core/queue"
	recipeService "recipe-finder/internal/core/recipe"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const noResultsMessage = "No recipes found for those ingredients"

var noResultsSuggestions = []string{
	"Try more common ingredients such as chicken, rice, tomato, onion or cheese",
	"Use English ingredient names",
	"Search with single ingredients",
}

// Searcher 食材搜尋
type Searcher interface {
	Search(ctx context.Context, raw []string) (*recipeService.SearchResult, error)
}

// SearchRequest 依食材搜尋食譜
type SearchRequest struct {
	Ingredients []string `json:"ingredients"`
}

// SearchResponse 搜尋結果
type SearchResponse struct {
	Success             bool                         `json:"success"`
	Count               int                          `json:"count"`
	IngredientsSearched []string                     `json:"ingredientsSearched"`
	Timestamp           string                       `json:"timestamp,omitempty"`
	Recipes             []recipeService.RankedRecipe `json:"recipes"`
	Message             string                       `json:"message,omitempty"`
	Suggestions         []string                     `json:"suggestions,omitempty"`
	Incomplete          bool                         `json:"incomplete,omitempty"`
	Reason              string                       `json:"reason,omitempty"`
}

// Handler 食譜處理程序
type Handler struct {
	searcher   Searcher
	production bool
}

// NewHandler 創建新的食譜處理程序
func NewHandler(searcher Searcher, production bool) *Handler {
	return &Handler{
		searcher:   searcher,
		production: production,
	}
}

// HandleSearchByIngredients 依食材搜尋食譜
func (h *Handler) HandleSearchByIngredients(c *gin.Context) {
	requestID := requestid.Get(c)

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		h.respondError(c, common.ErrInvalidRequest, "ingredients must be an array of strings")
		return
	}
	if len(req.Ingredients) == 0 {
		h.respondError(c, common.ErrInvalidRequest, "a non-empty ingredients array is required")
		return
	}
	if !hasIngredient(req.Ingredients) {
		h.respondError(c, common.ErrInvalidRequest, "invalid ingredients")
		return
	}

	common.LogInfo("開始處理食材搜尋請求",
		zap.String("request_id", requestID),
		zap.Strings("ingredients", req.Ingredients),
	)

	result, err := h.searcher.Search(c.Request.Context(), req.Ingredients)
	if err != nil {
		h.handleSearchError(c, requestID, err)
		return
	}

	resp := SearchResponse{
		Success:             true,
		Count:               len(result.Recipes),
		IngredientsSearched: result.IngredientsSearched,
		Recipes:             result.Recipes,
		Incomplete:          result.Incomplete,
		Reason:              result.Reason,
	}
	if resp.Count == 0 {
		resp.Message = noResultsMessage
		resp.Suggestions = noResultsSuggestions
	} else {
		resp.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}

	common.LogInfo("食材搜尋請求完成",
		zap.String("request_id", requestID),
		zap.Int("count", resp.Count),
		zap.Bool("incomplete", resp.Incomplete),
	)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleSearchError(c *gin.Context, requestID string, err error) {
	var e *common.CustomError
	switch {
	case errors.Is(err, queue.ErrQueueFull), errors.Is(err, queue.ErrClosed):
		e = common.ErrServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		e = common.ErrGatewayTimeout
	default:
		e = common.AsCustomError(err)
	}

	common.LogError("食材搜尋失敗",
		zap.String("request_id", requestID),
		zap.Int("status", e.Status),
		zap.Error(err),
	)
	h.respondError(c, e, err.Error())
}

// respondError 正式環境只回傳通用訊息
func (h *Handler) respondError(c *gin.Context, e *common.CustomError, detail string) {
	resp := common.ErrorResponse{
		Success: false,
		Code:    e.Code,
		Error:   e.Message,
	}
	if e.Status < http.StatusInternalServerError {
		resp.Error = detail
	} else if !h.production {
		resp.Message = detail
	}
	c.JSON(e.Status, resp)
}

func hasIngredient(raw []string) bool {
	for _, r := range raw {
		if strings.TrimSpace(r) != "" {
			return true
		}
	}
	return false
}
