package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypePermit = "PERMIT"
	TypeSick   = "SICK"
	TypeLeave  = "LEAVE"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
	StatusCanceled = "CANCELED"
)

type Leave struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;index"`
	Type          string     `gorm:"column:type;type:varchar(10);not null"`
	StartDate     time.Time  `gorm:"column:start_date;type:date;not null"`
	EndDate       time.Time  `gorm:"column:end_date;type:date;not null"`
	Reason        string     `gorm:"column:reason;type:text"`
	Status        string     `gorm:"column:status;type:varchar(10);not null;default:'PENDING'"`
	DecidedBy     *uuid.UUID `gorm:"column:decided_by;type:uuid"`
	DecisionNotes *string    `gorm:"column:decision_notes;type:text"`
	DecidedAt     *time.Time `gorm:"column:decided_at;type:timestamptz"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (Leave) TableName() string {
	return "leaves"
}
