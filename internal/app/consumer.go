package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-presensi/internal/config"
	"go-presensi/internal/messaging/kafka/consumer"
	"go-presensi/internal/performance"
	"go-presensi/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer memproyeksikan event kehadiran ke ringkasan performa
// sampai menerima sinyal stop.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

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

	performanceRepo := performance.NewRepository(gormDB)
	performanceService := performance.NewService(performanceRepo)

	reader := consumer.NewAttendanceReader(cfg.Kafka.Broker)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAttendanceEvents(ctx, reader, performanceService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
