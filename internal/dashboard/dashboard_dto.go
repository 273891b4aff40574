package dashboard

type StatsResponse struct {
	TotalEmployees  int            `json:"total_employees"`
	ActiveEmployees int            `json:"active_employees"`
	TotalPayroll    float64        `json:"total_payroll"`
	ByDepartment    map[string]int `json:"by_department"`
	ByStatus        map[string]int `json:"by_status"`
}
