package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/campus-exchange/internal/infrastructure/postgres"
	"github.com/oksasatya/campus-exchange/pkg/response"
)

// DBSession acquires one pooled connection per request, exposes it to the
// repository through the request context and releases it when the chain ends.
// A nil pool makes it a no-op.
func DBSession(pool *pgxpool.Pool, logger *logrus.Logger) gin.HandlerFunc {
	if pool == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		conn, err := pool.Acquire(c.Request.Context())
		if err != nil {
			if logger != nil {
				logger.WithError(err).WithField("path", c.Request.URL.Path).Error("acquire db connection failed")
			}
			response.Error[any](c, http.StatusServiceUnavailable, "database unavailable", nil)
			return
		}
		defer conn.Release()
		c.Request = c.Request.WithContext(postgres.WithConn(c.Request.Context(), conn))
		c.Next()
	}
}
