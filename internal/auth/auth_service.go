package auth

import (
	"context"
	"os"
	"time"

	"hr-admin/internal/audit"
	autherrors "hr-admin/internal/auth/errors"
	"hr-admin/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Pasangan kredensial admin bawaan. Dicek sebelum koleksi karyawan
// dipindai, dan selalu berhasil terlepas dari isi store.
const (
	adminUsername = "admin"
	adminPassword = "admin"
)

const sessionTTL = 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, identifier, secret string) (Session, error)
	Register(ctx context.Context, req RegisterRequest) (Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*Session, error)
	Validate(ctx context.Context, token string) (username, role, employeeID string, err error)
}

type service struct {
	sessions  Repository
	employees employee.Service
	records   employee.Repository
	audit     audit.Logger
	logger    *zap.Logger
}

func NewService(
	sessions Repository,
	employeeService employee.Service,
	employeeRepo employee.Repository,
	auditLogger audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		sessions:  sessions,
		employees: employeeService,
		records:   employeeRepo,
		audit:     auditLogger,
		logger:    l,
	}
}

// Login mencoba pasangan admin bawaan lebih dulu, lalu memindai koleksi
// karyawan untuk kecocokan email + password persis seperti tersimpan.
// Kedua jalur yang gagal mengembalikan error yang sama.
//
// Password dibandingkan sebagai plaintext. Ini kelemahan yang disengaja
// dipertahankan dari sistem asal; lihat DESIGN.md sebelum mengubahnya.
func (s *service) Login(ctx context.Context, identifier, secret string) (Session, error) {
	if identifier == adminUsername && secret == adminPassword {
		sess, err := s.createSession(ctx, adminUsername, RoleAdmin, "")
		if err != nil {
			return Session{}, err
		}
		s.auditEvent(ctx, "LOGIN_SUCCESS", adminUsername, "Admin logged in")
		return sess, nil
	}

	records, err := s.records.FindAll(ctx)
	if err != nil {
		s.logger.Error("login employee scan failed", zap.Error(err))
		return Session{}, err
	}

	// First match wins; keunikan email dijaga di layer employee service
	for _, e := range records {
		if e.Email == identifier && e.Password != "" && e.Password == secret {
			sess, err := s.createSession(ctx, e.Email, RoleEmployee, e.ID)
			if err != nil {
				return Session{}, err
			}
			s.auditEvent(ctx, "LOGIN_SUCCESS", e.Email, "Employee logged in")
			return sess, nil
		}
	}

	s.logger.Warn("login rejected", zap.String("identifier", identifier))
	s.auditEvent(ctx, "LOGIN_FAILED", identifier, "Invalid credentials")
	return Session{}, autherrors.ErrInvalidCredentials
}

// Register membuat record karyawan self-service dengan nilai bawaan
// portal, lalu langsung login dengan akun baru tersebut.
func (s *service) Register(ctx context.Context, req RegisterRequest) (Session, error) {
	position := req.Position
	if position == "" {
		position = "Staff"
	}

	created, err := s.employees.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Password:         req.Password,
		Position:         position,
		Department:       req.Department,
		Status:           string(employee.StatusActive),
		HireDate:         time.Now().UTC().Format("2006-01-02"),
		Salary:           50000,
		PerformanceNotes: "New employee registered via portal.",
	})
	if err != nil {
		return Session{}, err
	}

	s.auditEvent(ctx, "EMPLOYEE_REGISTERED", created.Email, "Self-service registration")
	return s.Login(ctx, created.Email, req.Password)
}

// Logout membuang sesi tersimpan tanpa syarat.
func (s *service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		s.logger.Error("logout delete session failed", zap.Error(err))
		return err
	}
	s.auditEvent(ctx, "LOGOUT", "", "Session destroyed")
	return nil
}

func (s *service) CurrentSession(ctx context.Context) (*Session, error) {
	sess, err := s.sessions.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Validate memverifikasi tanda tangan token DAN kesetaraannya dengan sesi
// yang tersimpan, sehingga hanya sesi terakhir yang berlaku.
func (s *service) Validate(ctx context.Context, token string) (string, string, string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsed.Valid {
		return "", "", "", autherrors.ErrInvalidToken
	}

	sess, err := s.sessions.GetSession(ctx)
	if err != nil {
		return "", "", "", autherrors.ErrNoActiveSession
	}
	if sess.Token != token {
		return "", "", "", autherrors.ErrInvalidToken
	}

	return sess.Username, sess.Role, sess.EmployeeID, nil
}

func (s *service) createSession(ctx context.Context, username, role, employeeID string) (Session, error) {
	token, err := s.generateToken(username, role, employeeID)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return Session{}, autherrors.ErrTokenGenerationFailed
	}

	sess := Session{
		Username:   username,
		Role:       role,
		Token:      token,
		EmployeeID: employeeID,
	}
	if err := s.sessions.SaveSession(ctx, sess); err != nil {
		s.logger.Error("persist session failed", zap.Error(err))
		return Session{}, err
	}

	s.logger.Info("session created",
		zap.String("username", username),
		zap.String("role", role),
	)
	return sess, nil
}

func (s *service) generateToken(username, role, employeeID string) (string, error) {
	claims := jwt.MapClaims{
		"username":    username,
		"role":        role,
		"employee_id": employeeID,
		"exp":         time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (s *service) auditEvent(ctx context.Context, action, actor, message string) {
	if s.audit == nil {
		return
	}
	s.audit.Log(ctx, audit.AuditLog{
		Action:  action,
		Actor:   actor,
		Message: message,
	})
}
