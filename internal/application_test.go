package application

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-despair/internal/config"
	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewProfileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("File storage lives under the XDG data dir", func(t *testing.T) {
		// Given: an isolated data home
		t.Cleanup(xdg.Reload)
		dataHome := t.TempDir()
		t.Setenv("XDG_DATA_HOME", dataHome)
		xdg.Reload()

		conf := &config.Config{Storage: config.Storage{Driver: config.StorageFile, FileName: "profile.json"}}

		// When: the repository is opened and a profile saved
		repo, closeRepo, err := newProfileRepository(ctx, discardLogger(), conf)
		require.NoError(t, err)
		defer closeRepo()

		profile := entity.DefaultProfile()
		profile.Stats.Draws = 4
		require.NoError(t, repo.Save(ctx, profile))

		// Then: it reads back from the data dir
		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, loaded.Stats.Draws)
		assert.FileExists(t, filepath.Join(dataHome, "tictactoe-despair", "profile.json"))
	})

	t.Run("Redis storage needs an address", func(t *testing.T) {
		conf := &config.Config{Storage: config.Storage{Driver: config.StorageRedis}}

		_, _, err := newProfileRepository(ctx, discardLogger(), conf)

		require.ErrorIs(t, err, ErrAddrNotFound)
	})
}
