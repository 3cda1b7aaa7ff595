package config

import (
	"fmt"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageRedis = "redis"
	StorageFile  = "file"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort  string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	ProfileID string  `yaml:"profile-id" env:"PROFILE_ID" env-default:"local"`
	Storage   Storage `yaml:"storage"`
	Redis     Redis   `yaml:"redis"`
	Game      Game    `yaml:"game"`
}

type Storage struct {
	Driver   string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	FileName string `yaml:"file-name" env:"STORAGE_FILE_NAME" env-default:"profile.json"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Game holds startup overrides for the stored settings.
type Game struct {
	// AnimationSpeedMs replaces the stored animation speed when positive.
	AnimationSpeedMs int `yaml:"animation-speed-ms" env:"GAME_ANIMATION_SPEED_MS"`
	// AutoPlayNextRound is "true", "false" or empty to keep the stored value.
	AutoPlayNextRound string `yaml:"auto-play-next-round" env:"GAME_AUTO_PLAY_NEXT_ROUND"`
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed" env:"GAME_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Storage.Driver != StorageRedis && config.Storage.Driver != StorageFile {
		return nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if _, _, err := config.Game.AutoPlayOverride(); err != nil {
		return nil, err
	}

	return config, nil
}

// AutoPlayOverride reports the configured auto-play value and whether one was set.
func (that *Game) AutoPlayOverride() (bool, bool, error) {
	if that.AutoPlayNextRound == "" {
		return false, false, nil
	}

	value, err := strconv.ParseBool(that.AutoPlayNextRound)
	if err != nil {
		return false, false, fmt.Errorf("invalid auto-play-next-round %q: %w", that.AutoPlayNextRound, err)
	}

	return value, true, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
