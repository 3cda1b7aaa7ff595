package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

const dataDir = "tictactoe-despair"

// DataFilePath resolves name inside the user's XDG data directory, creating the directory if needed.
func DataFilePath(name string) (string, error) {
	path, err := xdg.DataFile(filepath.Join(dataDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to resolve data file: %w", err)
	}

	return path, nil
}

type fileProfile struct {
	path string
}

// NewFileProfileRepository keeps the whole profile in one JSON document at path.
func NewFileProfileRepository(path string) ProfileRepository {
	return &fileProfile{path: path}
}

func (that *fileProfile) Load(_ context.Context) (*entity.Profile, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrProfileNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	profile := entity.DefaultProfile()
	if err = json.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	profile.Normalize()

	return profile, nil
}

// Save writes to a temporary file first so a crash never leaves a truncated profile.
func (that *fileProfile) Save(_ context.Context, profile *entity.Profile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal profile: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(that.path), 0o755); err != nil {
		return fmt.Errorf("failed to create profile dir: %w", err)
	}

	tmp := that.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil { //nolint: gosec // profile is not a secret
		return fmt.Errorf("failed to write profile: %w", err)
	}

	if err = os.Rename(tmp, that.path); err != nil {
		return fmt.Errorf("failed to replace profile: %w", err)
	}

	return nil
}
