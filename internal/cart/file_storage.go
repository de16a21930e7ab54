package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"chronokart/internal/model"

	"github.com/rs/zerolog"
)

// fileStorage persists the cart as a single JSON document at a fixed path,
// the durable equivalent of the browser's single storage key.
type fileStorage struct {
	path   string
	logger zerolog.Logger
}

// NewFileStorage creates a file-backed cart storage rooted at path.
func NewFileStorage(path string, logger zerolog.Logger) Storage {
	return &fileStorage{
		path:   path,
		logger: logger.With().Str("component", "cart-storage").Logger(),
	}
}

// Load reads the snapshot file. A missing file means no cart has been saved
// yet and returns nil without error; unreadable or malformed content is a
// persistence error for the store to handle.
func (fsg *fileStorage) Load(_ context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(fsg.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fsg.logger.Debug().Str("path", fsg.path).Msg("no cart snapshot on disk")
			return nil, nil
		}
		return nil, fmt.Errorf("%s: failed to read cart snapshot: %w", model.ErrCodePersistence, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		fsg.logger.Warn().Err(err).Str("path", fsg.path).Msg("cart snapshot is corrupt")
		return nil, fmt.Errorf("%s: failed to decode cart snapshot: %w", model.ErrCodePersistence, err)
	}

	return &snap, nil
}

// Save serialises the full snapshot and writes it atomically via a temp file
// rename so a crash mid-write never leaves a corrupt cart behind.
func (fsg *fileStorage) Save(_ context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%s: failed to encode cart snapshot: %w", model.ErrCodePersistence, err)
	}

	if dir := filepath.Dir(fsg.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%s: failed to create cart directory: %w", model.ErrCodePersistence, err)
		}
	}

	tmp := fsg.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%s: failed to write cart snapshot: %w", model.ErrCodePersistence, err)
	}
	if err := os.Rename(tmp, fsg.path); err != nil {
		return fmt.Errorf("%s: failed to replace cart snapshot: %w", model.ErrCodePersistence, err)
	}

	return nil
}
