package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"coffeehouse/internal/model"

	"github.com/rs/zerolog"
)

// Loader loads a menu from an external location, overriding the built-in
// seed. Implementations exist for the local file system and S3.
type Loader interface {
	Load(ctx context.Context, path string) (*Catalog, error)
}

// fileLoader implements Loader for reading menu JSON files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based menu loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "menu-loader").Logger(),
	}
}

// Load reads a JSON menu file containing an array of menu items.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Catalog, error) {
	l.logger.Info().Str("file", filePath).Msg("loading menu file")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read menu file")
		return nil, fmt.Errorf("failed to read menu file %s: %w", filePath, err)
	}

	var items []model.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse menu file")
		return nil, fmt.Errorf("failed to parse menu file %s: %w", filePath, err)
	}

	c, err := New(items)
	if err != nil {
		return nil, fmt.Errorf("invalid menu file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("items_loaded", c.Len()).
		Msg("menu file loaded successfully")

	return c, nil
}
