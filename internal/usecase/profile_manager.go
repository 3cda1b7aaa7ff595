package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-despair/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

type profileRepo interface {
	Load(ctx context.Context) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
}

// ProfileManager hands out a usable profile no matter what the storage holds.
type ProfileManager struct {
	logger *slog.Logger
	repo   profileRepo
}

func NewProfileManager(logger *slog.Logger, repo profileRepo) *ProfileManager {
	return &ProfileManager{
		logger: logger,
		repo:   repo,
	}
}

// Load returns the stored profile, or the defaults when it is missing or unreadable.
func (that *ProfileManager) Load(ctx context.Context) *entity.Profile {
	log := that.logger.With("method", "Load")

	profile, err := that.repo.Load(ctx)
	if errors.Is(err, apperror.ErrNotFound) {
		log.Info("no stored profile, starting fresh")
		return entity.DefaultProfile()
	}

	if err != nil {
		log.Warn("failed to load profile, using defaults", "error", err)
		return entity.DefaultProfile()
	}

	if profile == nil {
		return entity.DefaultProfile()
	}

	profile.Normalize()

	return profile
}

func (that *ProfileManager) Save(ctx context.Context, profile *entity.Profile) error {
	if err := that.repo.Save(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}
