package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shopcart_backend/internal/cache"

	"github.com/gin-gonic/gin"
)

const (
	// Limites par endpoint
	LoginMaxAttempts    = 5
	RegisterMaxAttempts = 3

	RateWindow = 1 * time.Minute
)

// RateLimit limite les requêtes par email sur une fenêtre fixe.
// Le body est relu sans être consommé pour les handlers suivants.
func RateLimit(prefix string, max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Next()
			return
		}

		key := prefix + ":" + input.Email
		count, err := cache.Shared.Incr(context.Background(), key, RateWindow)
		if err != nil {
			// Cache indisponible : on laisse passer plutôt que de bloquer le login
			c.Next()
			return
		}

		if count > max {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de tentatives. Réessayez dans %d secondes", int(RateWindow.Seconds())),
				"retry_after": int(RateWindow.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
