package attendance

type ClockInRequest struct {
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	EvidenceURL *string  `json:"evidence_url"`
	Notes       *string  `json:"notes"`
}

type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Notes     *string  `json:"notes"`
}

// CorrectionRequest dipakai admin untuk menetapkan status non-waktu
// (PERMIT/SICK/LEAVE/ALPHA) pada satu record.
type CorrectionRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      string   `json:"employee_name,omitempty"`
	WorkDate          string   `json:"work_date"`
	ShiftCode         string   `json:"shift_code"`
	ClockIn           *string  `json:"clock_in,omitempty"`
	ClockOut          *string  `json:"clock_out,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	Status            string   `json:"status"`
	LateMinutes       int      `json:"late_minutes"`
	EarlyLeaveMinutes int      `json:"early_leave_minutes"`
	Score             int      `json:"score"`
	EvidenceURL       *string  `json:"evidence_url,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}
