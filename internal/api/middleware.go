package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/garage-service/internal/models"
)

// rateLimitWindow es la ventana del contador de rate limiting
const rateLimitWindow = time.Minute

// RateLimitStore define el contador con ventana que respalda el rate
// limiting y el diagnóstico de Redis. La implementación real vive en
// internal/database.
type RateLimitStore interface {
	IncrWindow(key string, ttl time.Duration) (int64, error)
	HealthCheck() error
}

// RateLimitMiddleware limita requests por IP de cliente usando un
// contador en Redis. Si Redis no está configurado o falla, el request
// pasa sin limitar.
func (api *API) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if api.redis == nil || api.rateLimit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())
		count, err := api.redis.IncrWindow(key, rateLimitWindow)
		if err != nil {
			api.logger.WithError(err).Warn("Rate limit counter unavailable")
			c.Next()
			return
		}

		if count > int64(api.rateLimit) {
			c.JSON(http.StatusTooManyRequests, models.NewRateLimitedError("Too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
