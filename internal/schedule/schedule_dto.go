package schedule

type SetOverrideRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	WorkDate   string `json:"work_date" binding:"required,datetime=2006-01-02"`
	ShiftCode  string `json:"shift_code" binding:"required,oneof=P PM M OFF"`
	Reason     string `json:"reason" binding:"max=255"`
}

// DayScheduleResponse adalah satu hari jadwal yang sudah di-resolve:
// rotasi 5 harian, atau override bila ada.
type DayScheduleResponse struct {
	Date      string `json:"date"`
	ShiftCode string `json:"shift_code"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
	Source    string `json:"source"`
	Reason    string `json:"reason,omitempty"`
}
