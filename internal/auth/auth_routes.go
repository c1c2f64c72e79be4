package auth

import (
	"go-presensi/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, jwtSecret string) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), h.Login)
		authGroup.POST("/refresh", middleware.RateLimitByIP(rate.Limit(1), 5), h.RefreshToken)
		authGroup.POST("/logout", h.Logout)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			protected.GET("/me", h.Me)
			protected.PATCH("/password", h.ChangePassword)
		}
	}
}
