package auth

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex"`
	Username   string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex"`
	Name       string    `gorm:"column:name;type:varchar(100);not null"`
	Password   string    `gorm:"column:password;type:varchar(100);not null"`
	Role       string    `gorm:"column:role;type:varchar(20);not null;default:'EMPLOYEE'"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
