package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
	SessionStoreSQLite = "sqlite"
)

type Config struct {
	LogLevel     string        `yaml:"log-level"     env:"LOG_LEVEL"     env-default:"info"`
	HTTPPort     string        `yaml:"http-port"     env:"HTTP_PORT"     env-default:"9090"`
	SocketPort   string        `yaml:"socket-port"   env:"SOCKET_PORT"   env-default:"7070"`
	SessionStore string        `yaml:"session-store" env:"SESSION_STORE" env-default:"memory"`
	SessionTTL   time.Duration `yaml:"session-ttl"   env:"SESSION_TTL"   env-default:"168h"`
	SQLitePath   string        `yaml:"sqlite-path"   env:"SQLITE_PATH"   env-default:"./data/sessions.db"`
	Redis        Redis         `yaml:"redis"`
	Gemini       Gemini        `yaml:"gemini"`
	Game         Game          `yaml:"game"`
}

type Redis struct {
	Host     string `yaml:"host"     env:"REDIS_HOST"     env-default:"localhost"`
	Port     string `yaml:"port"     env:"REDIS_PORT"     env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
}

type Gemini struct {
	APIKey string `yaml:"api-key" env:"GEMINI_API_KEY" env-default:""`
	Model  string `yaml:"model"   env:"GEMINI_MODEL"   env-default:"gemini-3-flash-preview"`
}

type Game struct {
	HintCost        int           `yaml:"hint-cost"        env:"GAME_HINT_COST"        env-default:"25"`
	LevelReward     int           `yaml:"level-reward"     env:"GAME_LEVEL_REWARD"     env-default:"50"`
	AdvanceDelay    time.Duration `yaml:"advance-delay"    env:"GAME_ADVANCE_DELAY"    env-default:"1500ms"`
	ProviderTimeout time.Duration `yaml:"provider-timeout" env:"GAME_PROVIDER_TIMEOUT" env-default:"10s"`
}

// MustLoad - load all configurations in config.yml file. Without the file only
// the environment and defaults are used.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if errors.Is(err, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, err
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.SessionStore {
	case SessionStoreMemory, SessionStoreRedis, SessionStoreSQLite:
	default:
		return fmt.Errorf("unknown session store %q", that.SessionStore)
	}

	if that.Game.HintCost < 0 || that.Game.LevelReward < 0 {
		return errors.New("game costs must not be negative")
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
