package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Attendance struct {
	ID                uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID        uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:idx_attendances_employee_date"`
	WorkDate          time.Time    `gorm:"column:work_date;type:date;not null;uniqueIndex:idx_attendances_employee_date"`
	ShiftCode         string       `gorm:"column:shift_code;type:varchar(5);not null"`
	ClockIn           *time.Time   `gorm:"column:clock_in;type:timestamptz"`
	ClockOut          *time.Time   `gorm:"column:clock_out;type:timestamptz"`
	Latitude          *float64     `gorm:"column:latitude"`
	Longitude         *float64     `gorm:"column:longitude"`
	Status            string       `gorm:"column:status;type:varchar(20);not null;default:'PRESENT'"`
	LateMinutes       int          `gorm:"column:late_minutes;not null;default:0"`
	EarlyLeaveMinutes int          `gorm:"column:early_leave_minutes;not null;default:0"`
	EvidenceURL       *string      `gorm:"column:evidence_url;type:varchar(255)"`
	Notes             *string      `gorm:"column:notes;type:text"`
	CreatedAt         time.Time    `gorm:"column:created_at"`
	UpdatedAt         time.Time    `gorm:"column:updated_at"`
	Employee          *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
