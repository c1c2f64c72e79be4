package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-presensi/internal/attendance"
	"go-presensi/internal/config"
	"go-presensi/internal/employee"
	"go-presensi/internal/messaging/kafka"
	"go-presensi/internal/messaging/kafka/producer"
	"go-presensi/internal/schedule"
	"go-presensi/internal/shared/connection"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RunWorker menjalankan relay outbox -> Kafka dan penandaan absen harian
// sampai menerima sinyal stop.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

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
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	scheduleRepo := schedule.NewRepository(gormDB)
	scheduleService := schedule.NewService(scheduleRepo, employeeRepo, cfg.Office.Timezone)
	attendanceService := attendance.NewService(sqlDB, attendanceRepo, scheduleService, employeeRepo, outboxRepo, cfg.Office)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	// hari kerja kemarin sudah tutup lewat tengah malam; karyawan yang
	// terjadwal tapi tidak pernah clock-in ditandai ALPHA
	sched := cron.New(cron.WithLocation(cfg.Office.Timezone))
	if _, err := sched.AddFunc("30 0 * * *", func() {
		yesterday := time.Now().In(cfg.Office.Timezone).AddDate(0, 0, -1)
		marked, err := attendanceService.MarkAbsences(ctx, yesterday)
		if err != nil {
			logger.Error("mark absences failed", zap.Error(err))
			return
		}
		logger.Info("absence marking done",
			zap.Int("marked", marked),
			zap.String("work_date", yesterday.Format("2006-01-02")),
		)
	}); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
