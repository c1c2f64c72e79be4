package schedule

import (
	"go-presensi/internal/middleware"
	"go-presensi/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer rbac.Enforcer, jwtSecret string) {
	sch := r.Group("/schedules")
	sch.Use(middleware.AuthMiddleware(jwtSecret))
	{
		sch.GET("/me", rbac.RequireAccess(enforcer, "schedule", "read"), h.MySchedule)
		sch.GET("/employees/:employeeId", rbac.RequireAccess(enforcer, "schedule", "read_all"), h.EmployeeSchedule)
		sch.POST("/overrides", rbac.RequireAccess(enforcer, "schedule", "write"), h.SetOverride)
		sch.DELETE("/overrides/:employeeId/:date", rbac.RequireAccess(enforcer, "schedule", "write"), h.DeleteOverride)
	}
}
