package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-despair/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-despair/internal/entity"
)

var ErrProfileNotFound = fmt.Errorf("profile %w", apperror.ErrNotFound)

type ProfileRepository interface {
	Load(ctx context.Context) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
}

type dbProfile struct {
	logger *slog.Logger
	client *redis.Client
	prefix string
}

// NewProfileRepository keeps the profile under three keys: profile:<id>:settings, :stats and :achievements.
func NewProfileRepository(logger *slog.Logger, client *redis.Client, profileID string) ProfileRepository {
	return &dbProfile{
		logger: logger.With("component", "profile_repository"),
		client: client,
		prefix: "profile:" + profileID,
	}
}

func (that *dbProfile) settingsKey() string     { return that.prefix + ":settings" }
func (that *dbProfile) statsKey() string        { return that.prefix + ":stats" }
func (that *dbProfile) achievementsKey() string { return that.prefix + ":achievements" }

// Load reads whatever parts exist. Missing or malformed parts keep their defaults; a profile with no part at all is not found.
func (that *dbProfile) Load(ctx context.Context) (*entity.Profile, error) {
	log := that.logger.With("method", "Load")

	keys := []string{that.settingsKey(), that.statsKey(), that.achievementsKey()}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile := entity.DefaultProfile()
	decoders := []func(raw []byte) error{
		func(raw []byte) error {
			settings := entity.DefaultSettings()
			if err := json.Unmarshal(raw, &settings); err != nil {
				return err
			}

			profile.Settings = settings

			return nil
		},
		func(raw []byte) error {
			stats := entity.DefaultStats()
			if err := json.Unmarshal(raw, &stats); err != nil {
				return err
			}

			profile.Stats = stats

			return nil
		},
		func(raw []byte) error {
			achievements := map[string]bool{}
			if err := json.Unmarshal(raw, &achievements); err != nil {
				return err
			}

			profile.Achievements = achievements

			return nil
		},
	}

	found := false
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		found = true
		if err = decoders[i]([]byte(raw)); err != nil {
			log.Warn("malformed profile part, using defaults", "key", keys[i], "error", err)
		}
	}

	if !found {
		return nil, ErrProfileNotFound
	}

	profile.Normalize()

	return profile, nil
}

func (that *dbProfile) Save(ctx context.Context, profile *entity.Profile) error {
	settingsJSON, err := json.Marshal(profile.Settings)
	if err != nil {
		return fmt.Errorf("could not marshal settings: %w", err)
	}

	statsJSON, err := json.Marshal(profile.Stats)
	if err != nil {
		return fmt.Errorf("could not marshal stats: %w", err)
	}

	achievementsJSON, err := json.Marshal(profile.Achievements)
	if err != nil {
		return fmt.Errorf("could not marshal achievements: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, that.settingsKey(), settingsJSON, 0)
		pipe.Set(ctx, that.statsKey(), statsJSON, 0)
		pipe.Set(ctx, that.achievementsKey(), achievementsJSON, 0)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set profile: %w", err)
	}

	return nil
}
