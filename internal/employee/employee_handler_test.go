package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-admin/internal/employee"
	employeeerrors "hr-admin/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn       func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn       func(ctx context.Context, query string) ([]employee.EmployeeResponse, error)
	GetByIDFn      func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn       func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn       func(ctx context.Context, id string) error
	UpdateStatusFn func(ctx context.Context, id, status string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, query string) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, query)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEmployeeService) UpdateStatus(ctx context.Context, id, status string) (employee.EmployeeResponse, error) {
	return f.UpdateStatusFn(ctx, id, status)
}

func newTestContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

const validEmployeeBody = `{
	"first_name": "Siti",
	"last_name": "Rahma",
	"email": "siti@example.com",
	"password": "rahasia",
	"position": "Designer",
	"department": "Product",
	"status": "Active",
	"hire_date": "2025-06-15",
	"salary": 82000
}`

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "siti@example.com", req.Email)
				return employee.EmployeeResponse{ID: "emp_1", Email: req.Email}, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/employees", validEmployeeBody)
		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "emp_1")
	})

	t.Run("validation error on empty body", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/employees", `{}`)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation error on unknown status", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)

		body := strings.Replace(validEmployeeBody, `"Active"`, `"Vacation"`, 1)
		c, w := newTestContext(t, http.MethodPost, "/api/v1/employees", body)
		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email maps to 409", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(_ context.Context, _ employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/employees", validEmployeeBody)
		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	collection := []employee.EmployeeResponse{
		{ID: "emp_1", FirstName: "Budi", LastName: "Santoso", Email: "b@example.com", Salary: 75000, HireDate: "2024-03-01"},
		{ID: "emp_2", FirstName: "Siti", LastName: "Rahma", Email: "s@example.com", Salary: 82000, HireDate: "2025-06-15"},
		{ID: "emp_3", FirstName: "Agus", LastName: "Wijaya", Email: "a@example.com", Salary: 60000, HireDate: "2023-01-10"},
	}

	newService := func() *fakeEmployeeService {
		return &fakeEmployeeService{
			GetAllFn: func(_ context.Context, _ string) ([]employee.EmployeeResponse, error) {
				out := make([]employee.EmployeeResponse, len(collection))
				copy(out, collection)
				return out, nil
			},
		}
	}

	decodeList := func(t *testing.T, w *httptest.ResponseRecorder) []employee.EmployeeResponse {
		t.Helper()
		var envelope struct {
			Ok   bool                        `json:"ok"`
			Data []employee.EmployeeResponse `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Ok)
		return envelope.Data
	}

	t.Run("default sorts by name ascending", func(t *testing.T) {
		h := employee.NewHandler(newService())
		c, w := newTestContext(t, http.MethodGet, "/api/v1/employees", "")
		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeList(t, w)
		assert.Equal(t, []string{"emp_2", "emp_1", "emp_3"}, []string{data[0].ID, data[1].ID, data[2].ID})
	})

	t.Run("sort by salary descending", func(t *testing.T) {
		h := employee.NewHandler(newService())
		c, w := newTestContext(t, http.MethodGet, "/api/v1/employees?sort_by=salary&sort_dir=desc", "")
		h.GetAll(c)

		data := decodeList(t, w)
		assert.Equal(t, "emp_2", data[0].ID)
		assert.Equal(t, "emp_3", data[2].ID)
	})

	t.Run("stored order is preserved when requested", func(t *testing.T) {
		h := employee.NewHandler(newService())
		c, w := newTestContext(t, http.MethodGet, "/api/v1/employees?sort_by=stored", "")
		h.GetAll(c)

		data := decodeList(t, w)
		assert.Equal(t, "emp_1", data[0].ID)
		assert.Equal(t, "emp_3", data[2].ID)
	})

	t.Run("pagination slices the list", func(t *testing.T) {
		h := employee.NewHandler(newService())
		c, w := newTestContext(t, http.MethodGet, "/api/v1/employees?sort_by=stored&page=2&page_size=2", "")
		h.GetAll(c)

		data := decodeList(t, w)
		assert.Len(t, data, 1)
		assert.Equal(t, "emp_3", data[0].ID)
		assert.Contains(t, w.Body.String(), `"totalPages":2`)
	})

	t.Run("page past the end returns empty slice", func(t *testing.T) {
		h := employee.NewHandler(newService())
		c, w := newTestContext(t, http.MethodGet, "/api/v1/employees?page=9&page_size=10", "")
		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeList(t, w)
		assert.Empty(t, data)
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(_ context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/employees/emp_missing", "")
		c.Params = gin.Params{{Key: "id", Value: "emp_missing"}}
		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee not found")
	})
}

func TestEmployeeHandler_UpdateStatus(t *testing.T) {
	t.Run("employee can change own status", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateStatusFn: func(_ context.Context, id, status string) (employee.EmployeeResponse, error) {
				assert.Equal(t, "emp_1", id)
				assert.Equal(t, "On Leave", status)
				return employee.EmployeeResponse{ID: id, Status: status}, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPatch, "/api/v1/employees/emp_1/status", `{"status":"On Leave"}`)
		c.Params = gin.Params{{Key: "id", Value: "emp_1"}}
		c.Set("role", "employee")
		c.Set("employee_id", "emp_1")
		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("employee cannot change someone else's status", func(t *testing.T) {
		svc := &fakeEmployeeService{}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPatch, "/api/v1/employees/emp_2/status", `{"status":"On Leave"}`)
		c.Params = gin.Params{{Key: "id", Value: "emp_2"}}
		c.Set("role", "employee")
		c.Set("employee_id", "emp_1")
		h.UpdateStatus(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin can change anyone's status", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateStatusFn: func(_ context.Context, id, status string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{ID: id, Status: status}, nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPatch, "/api/v1/employees/emp_2/status", `{"status":"Terminated"}`)
		c.Params = gin.Params{{Key: "id", Value: "emp_2"}}
		c.Set("role", "admin")
		c.Set("employee_id", "")
		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(_ context.Context, id string) error {
				assert.Equal(t, "emp_1", id)
				return nil
			},
		}
		h := employee.NewHandler(svc)

		c, w := newTestContext(t, http.MethodDelete, "/api/v1/employees/emp_1", "")
		c.Params = gin.Params{{Key: "id", Value: "emp_1"}}
		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})
}
