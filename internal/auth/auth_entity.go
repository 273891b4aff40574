package auth

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Session adalah record sesi yang dipersist sebagai satu blob JSON.
// Tag camelCase mengikuti layout blob tersimpan. Paling banyak satu
// sesi hidup per store.
type Session struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	Token      string `json:"token"`
	EmployeeID string `json:"employeeId,omitempty"`
}
