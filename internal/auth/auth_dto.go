package auth

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=4"`
	Department string `json:"department" binding:"required,oneof=Engineering Sales Marketing HR Executive Product"`
	Position   string `json:"position"`
}

type SessionResponse struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	Token      string `json:"token"`
	EmployeeID string `json:"employee_id,omitempty"`
}
