package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeNumber string    `gorm:"column:employee_number;type:varchar(20);not null;uniqueIndex"`
	FullName       string    `gorm:"column:full_name;type:varchar(100);not null"`
	Position       string    `gorm:"column:position;type:varchar(50)"`
	// RotationOffset memilih fase karyawan dalam siklus rotasi 5 hari.
	// Selalu dalam [0,4]; nilai di luar itu ditolak di service.
	RotationOffset int            `gorm:"column:rotation_offset;not null;default:0"`
	Role           string         `gorm:"column:role;type:varchar(20);not null;default:'EMPLOYEE'"`
	Active         bool           `gorm:"column:active;not null;default:true"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employees"
}
