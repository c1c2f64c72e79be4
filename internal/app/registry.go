package app

import (
	"database/sql"

	"go-presensi/internal/activitylog"
	"go-presensi/internal/attendance"
	"go-presensi/internal/auth"
	"go-presensi/internal/config"
	"go-presensi/internal/employee"
	"go-presensi/internal/leave"
	"go-presensi/internal/messaging/kafka"
	"go-presensi/internal/performance"
	"go-presensi/internal/rbac"
	"go-presensi/internal/schedule"
	"go-presensi/internal/shared/counter"
	"go-presensi/internal/tracking"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	// --- Repositories ---
	activityLogRepo := activitylog.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	performanceRepo := performance.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	activityLogService := activitylog.NewService(activityLogRepo)
	authService := auth.NewService(authRepo, cfg.JWTSecret)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, rdb)
	scheduleService := schedule.NewService(scheduleRepo, employeeRepo, cfg.Office.Timezone)
	attendanceService := attendance.NewService(db, attendanceRepo, scheduleService, employeeRepo, outboxRepo, cfg.Office)
	leaveService := leave.NewService(db, leaveRepo, attendanceRepo, scheduleService, outboxRepo, cfg.Office.Timezone)
	performanceService := performance.NewService(performanceRepo)
	trackingService := tracking.NewService(rdb, cfg.Tracking)

	// --- Handlers ---
	activityLogHandler := activitylog.NewHandler(activityLogService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	performanceHandler := performance.NewHandler(performanceService)
	scheduleHandler := schedule.NewHandler(scheduleService, cfg.Office.Timezone)
	trackingHandler := tracking.NewHandler(trackingService)

	// --- Routes Registration ---
	router.Use(activitylog.Middleware(activityLogService))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, cfg.JWTSecret)
		activitylog.RegisterRoutes(api, activityLogHandler, enforcer, cfg.JWTSecret)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer, cfg.JWTSecret, rdb)
		employee.RegisterRoutes(api, employeeHandler, enforcer, cfg.JWTSecret)
		leave.RegisterRoutes(api, leaveHandler, enforcer, cfg.JWTSecret)
		performance.RegisterRoutes(api, performanceHandler, enforcer, cfg.JWTSecret)
		schedule.RegisterRoutes(api, scheduleHandler, enforcer, cfg.JWTSecret)
		tracking.RegisterRoutes(api, trackingHandler, enforcer, cfg.JWTSecret)
	}

	return nil
}
