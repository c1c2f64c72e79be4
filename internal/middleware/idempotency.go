package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency menahan request POST ganda dengan Idempotency-Key yang
// sama selagi request pertama masih diproses. Lock berumur pendek agar
// hilang sendiri bila proses crash.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		lockKey := fmt.Sprintf("idemp:%s:%s:%s:lock", c.FullPath(), userID, idempKey)

		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if err != nil {
			// Redis bermasalah: jangan blokir aksi utama
			c.Next()
			return
		}
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "Permintaan Anda sedang diproses, mohon tunggu sebentar.",
			})
			return
		}

		c.Set("idempotency_lock_key", lockKey)
		c.Next()

		_ = rdb.Del(c.Request.Context(), lockKey).Err()
	}
}
