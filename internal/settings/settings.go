// Package settings is the watch face settings store: a snapshot loaded from
// persistent storage plus change notification.
package settings

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jwulff/neatface-go/internal/domain"
	"github.com/jwulff/neatface-go/internal/host"
	"github.com/jwulff/neatface-go/internal/storage"
)

var (
	ErrUnknownKey   = errors.New("unknown setting")
	ErrInvalidValue = errors.New("invalid setting value")
)

// Manager holds the current settings. It is not safe for concurrent use;
// callers serialize access on the host's event loop.
type Manager struct {
	store    storage.Store
	current  domain.Settings
	handlers []func(domain.Settings)
}

// Open loads the stored settings on top of the defaults.
func Open(ctx context.Context, store storage.Store) (*Manager, error) {
	m := &Manager{store: store, current: domain.DefaultSettings()}

	stored, err := store.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	for _, s := range stored {
		value, err := Normalize(s.Key, s.Value)
		if err != nil {
			// Leftovers from an older version are skipped, not fatal.
			continue
		}
		m.current = m.current.With(s.Key, value)
	}
	return m, nil
}

// Current returns the latest snapshot.
func (m *Manager) Current() domain.Settings {
	return m.current
}

// OnChange registers fn to receive the full snapshot after every change.
func (m *Manager) OnChange(fn func(domain.Settings)) {
	m.handlers = append(m.handlers, fn)
}

// Set validates, persists and publishes one setting.
func (m *Manager) Set(ctx context.Context, key, value string) error {
	value, err := Normalize(key, value)
	if err != nil {
		return err
	}
	if err := m.store.SetSetting(ctx, key, value); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	m.current = m.current.With(key, value)
	m.publish()
	return nil
}

// Unset deletes one stored setting and publishes it at its default.
func (m *Manager) Unset(ctx context.Context, key string) error {
	if !slices.Contains(domain.Keys(), key) {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err := m.store.DeleteSetting(ctx, key); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	m.current = m.current.With(key, domain.DefaultSettings().Values()[key])
	m.publish()
	return nil
}

// Reset deletes every stored setting and publishes the defaults.
func (m *Manager) Reset(ctx context.Context) error {
	if err := m.store.ClearSettings(ctx); err != nil {
		return fmt.Errorf("failed to clear settings: %w", err)
	}
	m.current = domain.DefaultSettings()
	m.publish()
	return nil
}

func (m *Manager) publish() {
	for _, fn := range m.handlers {
		fn(m.current)
	}
}

// Normalize checks a key/value pair and returns the canonical value.
// Flags accept anything strconv.ParseBool does; colors accept any
// non-empty string and are not interpreted here.
func Normalize(key, value string) (string, error) {
	if !slices.Contains(domain.Keys(), key) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	value = strings.TrimSpace(value)
	if domain.IsBoolKey(key) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("%w: %s must be true or false, got %q", ErrInvalidValue, key, value)
		}
		return strconv.FormatBool(b), nil
	}
	if value == "" {
		return "", fmt.Errorf("%w: %s must not be empty", ErrInvalidValue, key)
	}
	return value, nil
}

var _ host.Settings = (*Manager)(nil)
