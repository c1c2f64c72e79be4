package activitylog

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware mencatat setiap request yang sudah selesai diproses. Dicatat
// di goroutine terpisah supaya latensi response tidak menanggung write DB.
func Middleware(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		entry := Entry{
			UserID:     c.GetString("user_id"),
			Method:     c.Request.Method,
			Path:       c.FullPath(),
			StatusCode: c.Writer.Status(),
			IPAddress:  c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			RequestID:  c.GetString("request_id"),
		}
		if entry.Path == "" {
			entry.Path = c.Request.URL.Path
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			svc.Record(ctx, entry)
		}()
	}
}
