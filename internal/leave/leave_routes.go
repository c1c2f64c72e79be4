package leave

import (
	"go-presensi/internal/middleware"
	"go-presensi/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer rbac.Enforcer, jwtSecret string) {
	lv := r.Group("/leaves")
	lv.Use(middleware.AuthMiddleware(jwtSecret))
	{
		lv.POST("", rbac.RequireAccess(enforcer, "leave", "create"), h.Submit)
		lv.GET("/me", rbac.RequireAccess(enforcer, "leave", "read"), h.ListMine)
		lv.POST("/:id/cancel", rbac.RequireAccess(enforcer, "leave", "create"), h.Cancel)

		lv.GET("", rbac.RequireAccess(enforcer, "leave", "read_all"), h.ListAll)
		lv.POST("/:id/approve", rbac.RequireAccess(enforcer, "leave", "approve"), h.Approve)
		lv.POST("/:id/reject", rbac.RequireAccess(enforcer, "leave", "approve"), h.Reject)
	}
}
