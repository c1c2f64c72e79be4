package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name" binding:"required"`
	Position       string `json:"position"`
	RotationOffset *int   `json:"rotation_offset" binding:"required,gte=0,lte=4"`
	Role           string `json:"role" binding:"omitempty,oneof=ADMIN EMPLOYEE"`
}

type UpdateEmployeeRequest struct {
	FullName       string `json:"full_name"`
	Position       string `json:"position"`
	RotationOffset *int   `json:"rotation_offset" binding:"omitempty,gte=0,lte=4"`
	Role           string `json:"role" binding:"omitempty,oneof=ADMIN EMPLOYEE"`
	Active         *bool  `json:"active"`
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FullName       string `json:"full_name"`
	Position       string `json:"position,omitempty"`
	RotationOffset int    `json:"rotation_offset"`
	Role           string `json:"role"`
	Active         bool   `json:"active"`
}
