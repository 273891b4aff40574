package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"hr-admin/internal/employee"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const statsCacheTTL = 5 * time.Minute

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Stats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	repo   employee.Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo employee.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Stats menghitung agregat koleksi. Hasil dicache di Redis; modul employee
// meng-invalidate key yang sama pada setiap mutasi.
func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	cacheKey := employee.StatsCacheKey

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp StatsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight menahan stampede saat cache kosong
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("stats collection read failed", zap.Error(err))
			return StatsResponse{}, err
		}

		resp := compute(employees)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, string(jsonData), statsCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return StatsResponse{}, err
	}

	return v.(StatsResponse), nil
}

func compute(employees []employee.Employee) StatsResponse {
	resp := StatsResponse{
		TotalEmployees: len(employees),
		ByDepartment:   make(map[string]int),
		ByStatus:       make(map[string]int),
	}
	for _, d := range employee.Departments() {
		resp.ByDepartment[string(d)] = 0
	}

	for _, e := range employees {
		if e.Status == employee.StatusActive {
			resp.ActiveEmployees++
		}
		resp.TotalPayroll += e.Salary
		resp.ByDepartment[string(e.Department)]++
		resp.ByStatus[string(e.Status)]++
	}
	return resp
}
