package activitylog

import (
	"go-presensi/internal/middleware"
	"go-presensi/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer rbac.Enforcer, jwtSecret string) {
	logs := r.Group("/activity-logs")
	logs.Use(middleware.AuthMiddleware(jwtSecret))
	{
		logs.GET("", rbac.RequireAccess(enforcer, "activity", "read_all"), h.ListRecent)
	}
}
