package events

import "time"

const AttendanceRecordedTopic = "presensi.attendance.recorded.v1"

const (
	AttendanceClockInEvent   = "attendance.clock_in"
	AttendanceClockOutEvent  = "attendance.clock_out"
	AttendanceCorrectedEvent = "attendance.corrected"
	AttendanceAbsentEvent    = "attendance.absent"
)

type AttendanceRecordedEvent struct {
	EventType         string    `json:"event_type"`
	AttendanceID      string    `json:"attendance_id"`
	EmployeeID        string    `json:"employee_id"`
	WorkDate          string    `json:"work_date"`
	ShiftCode         string    `json:"shift_code"`
	Status            string    `json:"status"`
	LateMinutes       int       `json:"late_minutes"`
	EarlyLeaveMinutes int       `json:"early_leave_minutes"`
	Score             int       `json:"score"`
	OccurredAt        time.Time `json:"occurred_at"`
}
