package employee

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"hr-admin/internal/storage"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("employee: record not found")

// Repository menyimpan seluruh koleksi karyawan sebagai satu blob JSON.
// Setiap mutasi adalah read-modify-write atas seluruh koleksi; mutex
// menserialkan mutasi di dalam satu proses. Antar proses yang berbagi
// store tetap last-writer-wins pada granularitas koleksi penuh.
//
//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Initialize(ctx context.Context) error
	FindAll(ctx context.Context) ([]Employee, error)
	Save(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Employee, error)
}

type repository struct {
	store  storage.Store
	mu     sync.Mutex
	logger *zap.Logger
}

func NewRepository(store storage.Store, logger ...*zap.Logger) Repository {
	l := zap.L().Named("employee.repo")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.repo")
	}
	return &repository{store: store, logger: l}
}

// Initialize menulis koleksi kosong bila key belum ada. Idempotent.
func (r *repository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.store.Get(ctx, storage.EmployeesKey)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrKeyNotFound) {
		return err
	}
	return r.writeAll(ctx, []Employee{})
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll(ctx)
}

// Save mengganti record dengan id yang sama di posisinya semula,
// atau menambahkan di akhir bila belum ada. Record dikembalikan apa adanya.
func (r *repository) Save(ctx context.Context, emp Employee) (Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employees, err := r.readAll(ctx)
	if err != nil {
		return Employee{}, err
	}

	replaced := false
	for i := range employees {
		if employees[i].ID == emp.ID {
			employees[i] = emp
			replaced = true
			break
		}
	}
	if !replaced {
		employees = append(employees, emp)
	}

	if err := r.writeAll(ctx, employees); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// Delete membuang record dari koleksi. No-op bila id tidak ada.
func (r *repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	employees, err := r.readAll(ctx)
	if err != nil {
		return err
	}

	filtered := employees[:0]
	for _, e := range employees {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}

	return r.writeAll(ctx, filtered)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	employees, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].ID == id {
			return &employees[i], nil
		}
	}
	return nil, ErrNotFound
}

// readAll memuat koleksi. Key absen atau blob korup dibaca sebagai koleksi
// kosong, tetapi blob korup dicatat di log agar tidak hilang tanpa jejak.
func (r *repository) readAll(ctx context.Context) ([]Employee, error) {
	raw, err := r.store.Get(ctx, storage.EmployeesKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []Employee{}, nil
	}
	if err != nil {
		return nil, err
	}

	var employees []Employee
	if err := json.Unmarshal([]byte(raw), &employees); err != nil {
		r.logger.Warn("employee blob is corrupt, treating as empty", zap.Error(err))
		return []Employee{}, nil
	}
	if employees == nil {
		employees = []Employee{}
	}
	return employees, nil
}

func (r *repository) writeAll(ctx context.Context, employees []Employee) error {
	raw, err := json.Marshal(employees)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.EmployeesKey, string(raw))
}
