package db

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"go-healthwatch/config"
)

var log = logrus.WithField("prefix", "db")

var ErrUnknownBackend = errors.New("unknown preference backend")

// Backend is a string key-value store. Every Set replaces one whole value.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open returns the backend named in cfg.
func Open(ctx context.Context, cfg config.PreferenceConfig) (Backend, error) {
	log.Infof("Opening %s preference backend", cfg.Backend)

	switch cfg.Backend {
	case "", "sqlite":
		return OpenSQLite(ctx, cfg.SQLitePath)
	case "redis":
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "firestore":
		return OpenFirestore(ctx, cfg.FirebaseCredentials, cfg.FirestoreCollection)
	case "memory":
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// MemoryBackend keeps preferences for the lifetime of the process.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: map[string]string{}}
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryBackend) Close() error { return nil }
