package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/verte-zerg/gridmem/internal/model"
)

// Backend is the durable key/value store behind the repository.
type Backend interface {
	LoadSettings(ctx context.Context) (map[string]string, error)
	SaveSettings(ctx context.Context, values map[string]string) error
}

// Repository reads and writes settings and notifies observers of changes.
type Repository struct {
	backend  Backend
	defaults model.Settings

	mu        sync.Mutex
	current   model.Settings
	observers []func(model.Settings)
}

// NewRepository returns a repository over backend. Values missing from the
// backend or malformed resolve to the matching field of base.
func NewRepository(backend Backend, base model.Settings) *Repository {
	return &Repository{backend: backend, defaults: base, current: base}
}

// Load reads the current snapshot from the backend.
func (r *Repository) Load(ctx context.Context) (model.Settings, error) {
	values, err := r.backend.LoadSettings(ctx)
	if err != nil {
		return r.defaults, fmt.Errorf("failed to load settings: %w", err)
	}
	s := DecodeWith(values, r.defaults)
	r.mu.Lock()
	r.current = s
	r.mu.Unlock()
	return s, nil
}

// Current returns the last loaded or saved snapshot.
func (r *Repository) Current() model.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Save persists s and notifies observers.
func (r *Repository) Save(ctx context.Context, s model.Settings) error {
	if err := r.backend.SaveSettings(ctx, Encode(s)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	r.mu.Lock()
	r.current = s
	observers := append([]func(model.Settings){}, r.observers...)
	r.mu.Unlock()

	for _, fn := range observers {
		fn(s)
	}
	return nil
}

// Set validates and persists a single raw value.
func (r *Repository) Set(ctx context.Context, key, value string) (model.Settings, error) {
	if err := Validate(key, value); err != nil {
		return r.Current(), err
	}
	s := DecodeWith(map[string]string{key: value}, r.Current())
	if err := r.Save(ctx, s); err != nil {
		return r.Current(), err
	}
	return s, nil
}

// Observe registers fn to receive every saved snapshot.
func (r *Repository) Observe(fn func(model.Settings)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}
