package employee

import (
	"context"
	"errors"
	"strings"
	"time"

	"hr-admin/internal/audit"
	employeeerrors "hr-admin/internal/employee/errors"
	"hr-admin/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StatsCacheKey adalah key cache statistik dashboard. Modul dashboard
// membacanya, modul ini meng-invalidate-nya pada setiap mutasi.
const StatsCacheKey = "dashboard:stats"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, query string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status string) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	audit  audit.Logger
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		audit:  auditLogger,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("department", req.Department),
	)

	emp, err := s.buildEmployee("", req.FirstName, req.LastName, req.Email, req.Password,
		req.Position, req.Department, req.Status, req.HireDate, req.Salary,
		req.AvatarURL, req.PerformanceNotes)
	if err != nil {
		s.logger.Warn("create employee invalid input", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := s.ensureEmailUnique(ctx, emp.Email, ""); err != nil {
		return EmployeeResponse{}, err
	}

	saved, err := s.repo.Save(ctx, emp)
	if err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateStats(ctx)
	s.auditEvent(ctx, "EMPLOYEE_CREATED", "Employee record created", saved.ID)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", saved.ID),
	)

	return mapToResponse(saved), nil
}

func (s *service) GetAll(ctx context.Context, query string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("q", query))

	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return mapToListResponse(employees), nil
	}

	filtered := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.FirstName), q) ||
			strings.Contains(strings.ToLower(e.LastName), q) ||
			strings.Contains(strings.ToLower(string(e.Department)), q) ||
			strings.Contains(strings.ToLower(e.Position), q) {
			filtered = append(filtered, e)
		}
	}
	return mapToListResponse(filtered), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	emp, err := s.buildEmployee(existing.ID, req.FirstName, req.LastName, req.Email, req.Password,
		req.Position, req.Department, req.Status, req.HireDate, req.Salary,
		req.AvatarURL, req.PerformanceNotes)
	if err != nil {
		s.logger.Warn("update employee invalid input", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if emp.Password == "" {
		// Password kosong pada update berarti tidak diganti
		emp.Password = existing.Password
	}

	if err := s.ensureEmailUnique(ctx, emp.Email, emp.ID); err != nil {
		return EmployeeResponse{}, err
	}

	saved, err := s.repo.Save(ctx, emp)
	if err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateStats(ctx)
	s.auditEvent(ctx, "EMPLOYEE_UPDATED", "Employee record updated", saved.ID)
	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(saved), nil
}

// Delete membuang record. Id yang tidak ada bukan error: operasi tetap
// no-op yang sukses.
func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return err
	}

	s.invalidateStats(ctx)
	s.auditEvent(ctx, "EMPLOYEE_DELETED", "Employee record deleted", id)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string) (EmployeeResponse, error) {
	s.logger.Debug("update employee status requested",
		zap.String("employee_id", id),
		zap.String("status", status),
	)

	newStatus := Status(status)
	if !newStatus.Valid() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidStatus
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	existing.Status = newStatus
	saved, err := s.repo.Save(ctx, *existing)
	if err != nil {
		s.logger.Error("update employee status persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateStats(ctx)
	s.auditEvent(ctx, "EMPLOYEE_STATUS_CHANGED", "Employee status changed to "+status, id)
	s.logger.Info("update employee status success",
		zap.String("employee_id", id),
		zap.String("status", status),
	)

	return mapToResponse(saved), nil
}

func (s *service) buildEmployee(
	id, firstName, lastName, email, password, position, department, status, hireDate string,
	salary float64,
	avatarURL, notes string,
) (Employee, error) {
	dept := Department(department)
	if !dept.Valid() {
		return Employee{}, employeeerrors.ErrInvalidDepartment
	}
	st := Status(status)
	if !st.Valid() {
		return Employee{}, employeeerrors.ErrInvalidStatus
	}
	if _, err := time.Parse("2006-01-02", hireDate); err != nil {
		return Employee{}, employeeerrors.ErrInvalidHireDate
	}
	if salary < 0 {
		return Employee{}, employeeerrors.ErrNegativeSalary
	}
	if id == "" {
		id = "emp_" + uuid.NewString()
	}

	return Employee{
		ID:               id,
		FirstName:        firstName,
		LastName:         lastName,
		Email:            strings.ToLower(strings.TrimSpace(email)),
		Password:         password,
		Position:         position,
		Department:       dept,
		Status:           st,
		HireDate:         hireDate,
		Salary:           salary,
		AvatarURL:        avatarURL,
		PerformanceNotes: notes,
	}, nil
}

func (s *service) ensureEmailUnique(ctx context.Context, email, selfID string) error {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, e := range employees {
		if e.ID != selfID && strings.EqualFold(e.Email, email) {
			return employeeerrors.ErrEmailAlreadyExists
		}
	}
	return nil
}

func (s *service) invalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, StatsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate stats cache",
			zap.Error(err),
			zap.String("key", StatsCacheKey),
		)
	}
}

func (s *service) auditEvent(ctx context.Context, action, message, employeeID string) {
	if s.audit == nil {
		return
	}
	s.audit.Log(ctx, audit.AuditLog{
		Action:  action,
		Actor:   contextutil.GetUsername(ctx),
		Message: message,
		Meta:    map[string]any{"employee_id": employeeID},
	})
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               emp.ID,
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		Email:            emp.Email,
		Position:         emp.Position,
		Department:       string(emp.Department),
		Status:           string(emp.Status),
		HireDate:         emp.HireDate,
		Salary:           emp.Salary,
		AvatarURL:        emp.AvatarURL,
		PerformanceNotes: emp.PerformanceNotes,
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
