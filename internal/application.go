package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-despair/internal/clock"
	"github.com/rocketscienceinc/tictactoe-despair/internal/config"
	"github.com/rocketscienceinc/tictactoe-despair/internal/repository"
	"github.com/rocketscienceinc/tictactoe-despair/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-despair/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-despair/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-despair/transport/rest"
	"github.com/rocketscienceinc/tictactoe-despair/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	repo, closeRepo, err := newProfileRepository(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	profiles := usecase.NewProfileManager(logger, repo)
	profile := profiles.Load(ctx)

	if conf.Game.AnimationSpeedMs > 0 {
		profile.Settings.AnimationSpeed = conf.Game.AnimationSpeedMs
	}

	if autoPlay, ok, _ := conf.Game.AutoPlayOverride(); ok {
		profile.Settings.AutoPlayNextRound = autoPlay
	}

	seed := conf.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	hub := websocket.NewHub(logger)
	controller := tictactoe.NewGameController(
		logger,
		clock.NewReal(),
		rand.New(rand.NewSource(seed)),
		hub,
		profiles,
		profile,
	)
	defer controller.Stop()

	router := rest.NewRouter(
		rest.NewHandlers(logger, controller),
		websocket.New(logger, controller, hub),
	)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage.Driver)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newProfileRepository opens the configured profile storage and returns its closer.
func newProfileRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.ProfileRepository, func(), error) {
	log := logger.With("method", "newProfileRepository")

	switch conf.Storage.Driver {
	case config.StorageRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closer := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewProfileRepository(logger, redisStorage.Connection, conf.ProfileID), closer, nil
	default:
		path, err := repository.DataFilePath(conf.Storage.FileName)
		if err != nil {
			return nil, nil, fmt.Errorf("could not resolve profile file: %w", err)
		}

		log.Info("using file storage", "path", path)

		return repository.NewFileProfileRepository(path), func() {}, nil
	}
}
