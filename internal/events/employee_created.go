package events

import "time"

const EmployeeCreatedTopic = "presensi.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Username   string    `json:"username"`
	OccurredAt time.Time `json:"occurred_at"`
}
