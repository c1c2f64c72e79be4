package app

import (
	"go-presensi/internal/config"
	"go-presensi/internal/middleware"
	"go-presensi/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// BuildApp menyambungkan infrastruktur lalu mendaftarkan seluruh modul
// dan route ke router yang diberikan.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	return registerModules(router, sqlDB, gormDB, rdb, cfg)
}
