package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lechworld/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lechworld/internal/theme"
)

// ThemeKey is the metadata key of the theme preference.
const ThemeKey = "theme"

// PreferenceStore keeps user preferences in the metadata repository.
// It implements theme.Store.
type PreferenceStore struct {
	repo metadata.Repository
}

func NewPreferenceStore(repo metadata.Repository) *PreferenceStore {
	return &PreferenceStore{repo: repo}
}

func (p *PreferenceStore) LoadTheme(ctx context.Context) (string, error) {
	v, err := p.repo.Get(ctx, ThemeKey)
	if err != nil {
		return "", fmt.Errorf("load theme preference: %w", err)
	}
	return string(v), nil
}

func (p *PreferenceStore) SaveTheme(ctx context.Context, t theme.Theme) error {
	if err := p.repo.Set(ctx, ThemeKey, []byte(t)); err != nil {
		return fmt.Errorf("save theme preference: %w", err)
	}
	return nil
}
