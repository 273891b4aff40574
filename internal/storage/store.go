// Package storage menyediakan key-value store untuk blob JSON milik aplikasi.
// Seluruh data karyawan disimpan sebagai satu blob di bawah EmployeesKey,
// dan sesi aktif sebagai satu blob di bawah SessionKey.
package storage

import (
	"context"
	"errors"
)

const (
	EmployeesKey = "hr_sys_data_new"
	SessionKey   = "hr_sys_auth_token_new"
)

var ErrKeyNotFound = errors.New("storage: key not found")

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
