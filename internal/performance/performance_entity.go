package performance

import (
	"time"

	"github.com/google/uuid"
)

// DailySummary adalah proyeksi skor harian per karyawan, dipelihara oleh
// consumer dari event attendance.recorded.
type DailySummary struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:idx_perf_employee_date"`
	WorkDate   time.Time `gorm:"column:work_date;type:date;not null;uniqueIndex:idx_perf_employee_date"`
	Status     string    `gorm:"column:status;type:varchar(20);not null"`
	Score      int       `gorm:"column:score;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (DailySummary) TableName() string {
	return "performance_summaries"
}
