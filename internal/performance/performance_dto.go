package performance

type RecapResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Days         int     `json:"days"`
	AverageScore float64 `json:"average_score"`
}

type DailySummaryResponse struct {
	EmployeeID string `json:"employee_id"`
	WorkDate   string `json:"work_date"`
	Status     string `json:"status"`
	Score      int    `json:"score"`
}
