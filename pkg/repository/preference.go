package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/envelope-zero/expense-tracker/pkg/models"
	"github.com/envelope-zero/expense-tracker/pkg/storage"
	"github.com/rs/zerolog/log"
)

// PreferenceRepository stores the theme as a raw string, not as JSON.
type PreferenceRepository struct {
	store storage.Store
}

var _ Preferences = (*PreferenceRepository)(nil)

func NewPreferenceRepository(store storage.Store) *PreferenceRepository {
	return &PreferenceRepository{store: store}
}

// Theme returns the stored theme. It defaults to light when no
// theme or an unknown theme is stored.
func (r *PreferenceRepository) Theme(ctx context.Context) (models.Theme, error) {
	value, err := r.store.Get(ctx, keyTheme)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return models.ThemeLight, nil
	} else if err != nil {
		return "", err
	}

	theme := models.Theme(strings.TrimSpace(string(value)))
	if !theme.Valid() {
		log.Warn().Str("theme", string(theme)).Msg("unknown theme stored, using light")
		return models.ThemeLight, nil
	}

	return theme, nil
}

func (r *PreferenceRepository) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return models.ErrThemeInvalid
	}

	return r.store.Set(ctx, keyTheme, []byte(theme))
}
