package tracking

import (
	"go-presensi/internal/middleware"
	"go-presensi/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer rbac.Enforcer, jwtSecret string) {
	trk := r.Group("/tracking")
	trk.Use(middleware.AuthMiddleware(jwtSecret))
	{
		trk.POST("/ping", rbac.RequireAccess(enforcer, "tracking", "ping"), h.Ping)
		trk.GET("/last", rbac.RequireAccess(enforcer, "tracking", "read_all"), h.ListLastLocations)
	}
}
