package attendance

import (
	"go-presensi/internal/middleware"
	"go-presensi/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer rbac.Enforcer, jwtSecret string, rdb *redis.Client) {
	att := r.Group("/attendances")
	att.Use(middleware.AuthMiddleware(jwtSecret))
	{
		// double-submit dari mobile sering terjadi di area sinyal jelek
		att.POST("/clock-in",
			rbac.RequireAccess(enforcer, "attendance", "create"),
			middleware.Idempotency(rdb),
			h.ClockIn,
		)
		att.POST("/clock-out",
			rbac.RequireAccess(enforcer, "attendance", "create"),
			middleware.Idempotency(rdb),
			h.ClockOut,
		)

		att.GET("/me", rbac.RequireAccess(enforcer, "attendance", "read"), h.ListMine)
		att.GET("", rbac.RequireAccess(enforcer, "attendance", "read_all"), h.ListAll)
		att.GET("/:id", rbac.RequireAccess(enforcer, "attendance", "read_all"), h.GetByID)
		att.PATCH("/:id/correction", rbac.RequireAccess(enforcer, "attendance", "correct"), h.Correct)
	}
}
