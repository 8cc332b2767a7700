package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/campus-exchange/internal/interface/middleware"
)

// Limits builds Redis-backed rate limiters for route registration.
type Limits struct {
	rdb     *redis.Client
	enabled bool
}

func NewLimits(rdb *redis.Client, enabled bool) Limits {
	return Limits{rdb: rdb, enabled: enabled}
}

// PerMinute allows max requests per minute per key.
func (l Limits) PerMinute(max int, key middleware.KeyFunc) gin.HandlerFunc {
	if !l.enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(l.rdb, max, time.Minute, key, middleware.AllowPaths("/healthz"))
}
