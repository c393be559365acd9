// Package storage provides storage abstractions for watch face settings.
package storage

import (
	"context"
	"errors"
	"time"
)

// Store is the interface for persistent storage.
type Store interface {
	// Settings
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
	ListSettings(ctx context.Context) ([]Setting, error)
	ClearSettings(ctx context.Context) error

	// Lifecycle
	Close() error
}

// Setting is one stored key/value pair.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// NewSetting creates a setting stamped with the current time.
func NewSetting(key, value string) Setting {
	return Setting{Key: key, Value: value, UpdatedAt: time.Now()}
}

// ErrNotFound is returned when a record is not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	return e.Resource + " not found: " + e.ID
}

// IsNotFound checks if an error is, or wraps, a not found error.
func IsNotFound(err error) bool {
	var nf ErrNotFound
	return errors.As(err, &nf)
}
