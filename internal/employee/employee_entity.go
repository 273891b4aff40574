package employee

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentHR          Department = "HR"
	DepartmentExecutive   Department = "Executive"
	DepartmentProduct     Department = "Product"
)

func Departments() []Department {
	return []Department{
		DepartmentEngineering,
		DepartmentSales,
		DepartmentMarketing,
		DepartmentHR,
		DepartmentExecutive,
		DepartmentProduct,
	}
}

func (d Department) Valid() bool {
	for _, v := range Departments() {
		if d == v {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusActive     Status = "Active"
	StatusOnLeave    Status = "On Leave"
	StatusTerminated Status = "Terminated"
	StatusProbation  Status = "Probation"
)

func Statuses() []Status {
	return []Status{StatusActive, StatusOnLeave, StatusTerminated, StatusProbation}
}

func (s Status) Valid() bool {
	for _, v := range Statuses() {
		if s == v {
			return true
		}
	}
	return false
}

// Employee adalah satu record di dalam blob koleksi.
// Tag JSON camelCase mengikuti layout blob yang sudah tersimpan,
// jangan diubah tanpa migrasi data.
type Employee struct {
	ID               string     `json:"id"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Email            string     `json:"email"`
	Password         string     `json:"password,omitempty"`
	Position         string     `json:"position"`
	Department       Department `json:"department"`
	Status           Status     `json:"status"`
	HireDate         string     `json:"hireDate"`
	Salary           float64    `json:"salary"`
	AvatarURL        string     `json:"avatarUrl,omitempty"`
	PerformanceNotes string     `json:"performanceNotes,omitempty"`
}
