package activitylog

import (
	"time"

	"github.com/google/uuid"
)

// RetentionDays menentukan berapa lama log aktivitas disimpan. Log lebih
// tua dari ini disapu oleh sweep retensi.
const RetentionDays = 3

type ActivityLog struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     *uuid.UUID `gorm:"column:user_id;type:uuid;index"`
	Method     string     `gorm:"column:method;type:varchar(10);not null"`
	Path       string     `gorm:"column:path;type:varchar(255);not null"`
	StatusCode int        `gorm:"column:status_code;not null"`
	IPAddress  string     `gorm:"column:ip_address;type:varchar(45)"`
	UserAgent  string     `gorm:"column:user_agent;type:varchar(512)"`
	Device     string     `gorm:"column:device;type:varchar(20);not null"`
	RequestID  string     `gorm:"column:request_id;type:varchar(64)"`
	CreatedAt  time.Time  `gorm:"column:created_at;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

type ActivityLogResponse struct {
	ID         string  `json:"id"`
	UserID     *string `json:"user_id,omitempty"`
	Method     string  `json:"method"`
	Path       string  `json:"path"`
	StatusCode int     `json:"status_code"`
	IPAddress  string  `json:"ip_address,omitempty"`
	Device     string  `json:"device"`
	RequestID  string  `json:"request_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
