package performance

import (
	"go-presensi/internal/middleware"
	"go-presensi/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer rbac.Enforcer, jwtSecret string) {
	perf := r.Group("/performance")
	perf.Use(middleware.AuthMiddleware(jwtSecret))
	{
		perf.GET("/recap", rbac.RequireAccess(enforcer, "performance", "read_all"), h.MonthlyRecap)
		perf.GET("/me", rbac.RequireAccess(enforcer, "performance", "read"), h.MyHistory)
	}
}
