package auth

import (
	"context"
	"encoding/json"
	"errors"

	"hr-admin/internal/storage"

	"go.uber.org/zap"
)

var ErrNoSession = errors.New("auth: no active session")

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	SaveSession(ctx context.Context, sess Session) error
	GetSession(ctx context.Context) (*Session, error)
	DeleteSession(ctx context.Context) error
}

type repository struct {
	store  storage.Store
	logger *zap.Logger
}

func NewRepository(store storage.Store, logger ...*zap.Logger) Repository {
	l := zap.L().Named("auth.repo")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.repo")
	}
	return &repository{store: store, logger: l}
}

func (r *repository) SaveSession(ctx context.Context, sess Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.SessionKey, string(raw))
}

// GetSession membaca blob sesi. Key absen ATAU blob korup sama-sama
// berarti tidak ada sesi; blob korup tetap dicatat di log.
func (r *repository) GetSession(ctx context.Context) (*Session, error) {
	raw, err := r.store.Get(ctx, storage.SessionKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		r.logger.Warn("session blob is corrupt, treating as no session", zap.Error(err))
		return nil, ErrNoSession
	}
	return &sess, nil
}

// DeleteSession menghapus blob tanpa syarat. Tidak error bila sudah kosong.
func (r *repository) DeleteSession(ctx context.Context) error {
	return r.store.Delete(ctx, storage.SessionKey)
}
