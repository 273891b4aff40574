package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hr-admin/internal/dashboard"
	"hr-admin/internal/employee"

	employeeMock "hr-admin/internal/employee/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()

	collection := []employee.Employee{
		{ID: "emp_1", Department: employee.DepartmentEngineering, Status: employee.StatusActive, Salary: 75000},
		{ID: "emp_2", Department: employee.DepartmentEngineering, Status: employee.StatusOnLeave, Salary: 82000},
		{ID: "emp_3", Department: employee.DepartmentSales, Status: employee.StatusActive, Salary: 60000},
	}

	t.Run("computes aggregates without a cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		repo.EXPECT().FindAll(ctx).Return(collection, nil)

		svc := dashboard.NewService(repo, nil)

		stats, err := svc.Stats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, stats.TotalEmployees)
		assert.Equal(t, 2, stats.ActiveEmployees)
		assert.Equal(t, float64(217000), stats.TotalPayroll)
		assert.Equal(t, 2, stats.ByDepartment["Engineering"])
		assert.Equal(t, 1, stats.ByDepartment["Sales"])
		// Departemen tanpa karyawan tetap muncul dengan nol
		assert.Equal(t, 0, stats.ByDepartment["HR"])
		assert.Equal(t, 1, stats.ByStatus["On Leave"])
	})

	t.Run("cache hit skips the collection entirely", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)

		cached := dashboard.StatsResponse{
			TotalEmployees:  7,
			ActiveEmployees: 5,
			TotalPayroll:    350000,
			ByDepartment:    map[string]int{"Engineering": 7},
			ByStatus:        map[string]int{"Active": 5},
		}
		raw, _ := json.Marshal(cached)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(employee.StatsCacheKey).SetVal(string(raw))

		svc := dashboard.NewService(repo, rdb)

		stats, err := svc.Stats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, cached, stats)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss computes then writes the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		repo.EXPECT().FindAll(ctx).Return(collection, nil)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(employee.StatsCacheKey).RedisNil()
		redisMock.Regexp().
			ExpectSet(employee.StatsCacheKey, `.*"total_employees":3.*`, 5*time.Minute).
			SetVal("OK")

		svc := dashboard.NewService(repo, rdb)

		stats, err := svc.Stats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, stats.TotalEmployees)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("corrupt cache entry falls back to recomputing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		repo.EXPECT().FindAll(ctx).Return(collection, nil)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(employee.StatsCacheKey).SetVal("{{corrupt")
		redisMock.Regexp().
			ExpectSet(employee.StatsCacheKey, `.*`, 5*time.Minute).
			SetVal("OK")

		svc := dashboard.NewService(repo, rdb)

		stats, err := svc.Stats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, stats.TotalEmployees)
	})

	t.Run("propagates collection read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		repo.EXPECT().FindAll(ctx).Return(nil, errors.New("store down"))

		svc := dashboard.NewService(repo, nil)

		_, err := svc.Stats(ctx)
		assert.Error(t, err)
	})
}
