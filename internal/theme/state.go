package theme

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/lechworld/internal/logging"
)

// Store persists the theme preference. LoadTheme returns "" when nothing
// has been saved yet.
type Store interface {
	LoadTheme(ctx context.Context) (string, error)
	SaveTheme(ctx context.Context, t Theme) error
}

type State struct {
	mu      sync.RWMutex
	current Theme
	store   Store
	logger  logging.Logger
}

// NewState loads the persisted preference. A missing or unrecognised value
// yields Default; only store failures are returned.
func NewState(ctx context.Context, store Store, logger logging.Logger) (*State, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	saved, err := store.LoadTheme(ctx)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	current := Default
	if saved != "" {
		t, err := Parse(saved)
		if err != nil {
			logger.Warn(ctx, "ignoring saved theme", "theme", saved)
		} else {
			current = t
		}
	}

	return &State{current: current, store: store, logger: logger}, nil
}

func (s *State) Current() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set persists t and makes it current. The current theme is unchanged if
// saving fails.
func (s *State) Set(ctx context.Context, t Theme) error {
	t, err := Parse(string(t))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(ctx, t)
}

// Toggle advances to the next theme and returns the theme now current.
func (s *State) Toggle(ctx context.Context) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.setLocked(ctx, s.current.Next()); err != nil {
		return s.current, err
	}
	return s.current, nil
}

func (s *State) setLocked(ctx context.Context, t Theme) error {
	if err := s.store.SaveTheme(ctx, t); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	if s.current != t {
		s.logger.Info(ctx, "theme changed", "from", s.current.String(), "to", t.String())
	}
	s.current = t
	return nil
}
