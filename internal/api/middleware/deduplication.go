package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"recipe-finder/internal/core/dedup"
	"recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deduplication 請求去重中間件，window 內相同的 POST 請求回 429
//
// 存放失敗時放行請求。
func Deduplication(store dedup.Store, window time.Duration) gin.HandlerFunc {
	if window <= 0 {
		window = time.Second
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogWarn("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}
			hash := sha256.Sum256(body)
			fingerprint += ":" + hex.EncodeToString(hash[:])

			// 恢復請求體
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		seen, err := store.Seen(c.Request.Context(), fingerprint, window)
		if err != nil {
			common.LogWarn("去重存放失敗，放行請求",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			c.Next()
			return
		}
		if seen {
			abortWithError(c, common.ErrTooManyRequests, "duplicate request")
			return
		}

		c.Next()
	}
}
