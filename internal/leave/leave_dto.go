package leave

type SubmitLeaveRequest struct {
	Type      string `json:"type" binding:"required,oneof=PERMIT SICK LEAVE"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"required,max=500"`
}

type DecideLeaveRequest struct {
	Notes string `json:"notes" binding:"max=500"`
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	Type          string  `json:"type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	DecidedBy     *string `json:"decided_by,omitempty"`
	DecisionNotes *string `json:"decision_notes,omitempty"`
	DecidedAt     *string `json:"decided_at,omitempty"`
}
