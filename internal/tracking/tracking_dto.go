package tracking

type PingRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type PingResponse struct {
	Recorded   bool   `json:"recorded"`
	RecordedAt string `json:"recorded_at,omitempty"`
}

// LastLocation adalah posisi terakhir yang diketahui dari satu karyawan,
// selama TTL-nya belum lewat.
type LastLocation struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	RecordedAt string  `json:"recorded_at"`
}
