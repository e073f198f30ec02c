package app

import (
	"errors"
	"time"

	"github.com/dmitrymomot/saaslanding/pkg/config"
	"github.com/dmitrymomot/saaslanding/pkg/email"
	"github.com/dmitrymomot/saaslanding/pkg/httpserver"
	"github.com/dmitrymomot/saaslanding/pkg/mongo"
	"github.com/dmitrymomot/saaslanding/pkg/pg"
	"github.com/dmitrymomot/saaslanding/pkg/redis"
	"github.com/dmitrymomot/saaslanding/pkg/validator"
	"github.com/dmitrymomot/saaslanding/svc/lead"
)

// Lead storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
	StorageRedis    = "redis"
)

var ErrInvalidConfig = errors.New("invalid app config")

type AppConfig struct {
	Env         string        `env:"APP_ENV" envDefault:"development"`
	ServiceName string        `env:"APP_NAME" envDefault:"landing"`
	LogLevel    string        `env:"LOG_LEVEL"`
	Storage     string        `env:"LEAD_STORAGE" envDefault:"memory"`
	ResetDelay  time.Duration `env:"HERO_RESET_DELAY" envDefault:"3s"`
	ContentFile string        `env:"CONTENT_FILE"`
}

func (c AppConfig) Validate() error {
	err := validator.Apply(
		validator.RequiredString("service_name", c.ServiceName),
		validator.InListString("storage", c.Storage, []string{StorageMemory, StoragePostgres, StorageMongo, StorageRedis}),
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// Config is everything the binary reads from the environment.
type Config struct {
	App    AppConfig
	Server httpserver.Config
	PG     pg.Config
	Redis  redis.Config
	Mongo  mongo.Config
	Email  email.Config
	Lead   lead.Config
}

// LoadConfig reads every section from the environment and .env.
func LoadConfig() (Config, error) {
	var cfg Config
	err := errors.Join(
		config.Load(&cfg.App),
		config.Load(&cfg.Server),
		config.Load(&cfg.PG),
		config.Load(&cfg.Redis),
		config.Load(&cfg.Mongo),
		config.Load(&cfg.Email),
		config.Load(&cfg.Lead),
	)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.App.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
