package employee

type CreateEmployeeRequest struct {
	FirstName        string  `json:"first_name" binding:"required"`
	LastName         string  `json:"last_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Password         string  `json:"password"`
	Position         string  `json:"position" binding:"required"`
	Department       string  `json:"department" binding:"required,oneof=Engineering Sales Marketing HR Executive Product"`
	Status           string  `json:"status" binding:"required,oneof=Active 'On Leave' Terminated Probation"`
	HireDate         string  `json:"hire_date" binding:"required"`
	Salary           float64 `json:"salary" binding:"min=0"`
	AvatarURL        string  `json:"avatar_url"`
	PerformanceNotes string  `json:"performance_notes"`
}

type UpdateEmployeeRequest struct {
	FirstName        string  `json:"first_name" binding:"required"`
	LastName         string  `json:"last_name" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Password         string  `json:"password"`
	Position         string  `json:"position" binding:"required"`
	Department       string  `json:"department" binding:"required,oneof=Engineering Sales Marketing HR Executive Product"`
	Status           string  `json:"status" binding:"required,oneof=Active 'On Leave' Terminated Probation"`
	HireDate         string  `json:"hire_date" binding:"required"`
	Salary           float64 `json:"salary" binding:"min=0"`
	AvatarURL        string  `json:"avatar_url"`
	PerformanceNotes string  `json:"performance_notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active 'On Leave' Terminated Probation"`
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	Position         string  `json:"position"`
	Department       string  `json:"department"`
	Status           string  `json:"status"`
	HireDate         string  `json:"hire_date"`
	Salary           float64 `json:"salary"`
	AvatarURL        string  `json:"avatar_url,omitempty"`
	PerformanceNotes string  `json:"performance_notes,omitempty"`
}
