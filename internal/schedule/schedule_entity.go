package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Override menggantikan shift hasil rotasi untuk satu karyawan pada satu
// tanggal kerja. Dipakai untuk tukar shift atau penugasan khusus.
type Override struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:idx_overrides_employee_date"`
	WorkDate   time.Time `gorm:"column:work_date;type:date;not null;uniqueIndex:idx_overrides_employee_date"`
	ShiftCode  string    `gorm:"column:shift_code;type:varchar(5);not null"`
	Reason     string    `gorm:"column:reason;type:varchar(255)"`
	CreatedBy  uuid.UUID `gorm:"column:created_by;type:uuid"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Override) TableName() string {
	return "schedule_overrides"
}
