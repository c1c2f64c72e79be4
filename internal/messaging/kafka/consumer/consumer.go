package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"go-presensi/internal/events"
	"go-presensi/internal/performance"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const groupID = "presensi-performance-projector"

// NewAttendanceReader membuat reader untuk topik attendance-recorded
// dengan consumer group tetap, supaya offset tersimpan lintas restart.
func NewAttendanceReader(broker string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    events.AttendanceRecordedTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}

// ConsumeAttendanceEvents memproyeksikan event kehadiran ke ringkasan
// performa harian sampai context dibatalkan. Event rusak di-commit dan
// dilewati; kegagalan DB tidak di-commit supaya dicoba ulang.
func ConsumeAttendanceEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	svc performance.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.attendance")
	log.Info("attendance consumer started", zap.String("topic", events.AttendanceRecordedTopic))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				log.Info("attendance consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		var event events.AttendanceRecordedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Warn("skipping malformed event",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			if err := reader.CommitMessages(ctx, msg); err != nil {
				log.Error("commit malformed event failed", zap.Error(err))
			}
			continue
		}

		if err := svc.Apply(ctx, event); err != nil {
			log.Error("apply attendance event failed",
				zap.String("attendance_id", event.AttendanceID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Error(err))
			continue
		}

		log.Debug("attendance event applied",
			zap.String("employee_id", event.EmployeeID),
			zap.String("work_date", event.WorkDate),
		)
	}
}
