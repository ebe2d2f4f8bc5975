package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	SourceSeed     = "seed"
	SourcePostgres = "postgres"
)

type Config struct {
	Env           string `env:"ENV" env-default:"local"`
	ListingSource string `env:"LISTING_SOURCE" env-default:"seed"`
	DatabaseURL   string `env:"DATABASE_URL"`
	HTTP          HTTPConfig
	Redis         RedisConfig
	Subcategory   SubcategoryConfig
	Listings      ListingsConfig
}

type HTTPConfig struct {
	Port               int           `env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout        time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout       time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout        time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

// RedisConfig — кэш снимка объявлений.
type RedisConfig struct {
	Enabled  bool          `env:"REDIS_ENABLE" env-default:"false"`
	Addr     string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `env:"LISTINGS_CACHE_TTL" env-default:"1m"`
}

// SubcategoryConfig — удалённый справочник подкатегорий (детские товары, аптека).
type SubcategoryConfig struct {
	Enabled bool          `env:"SUBCATEGORY_ENABLE" env-default:"false"`
	BaseURL string        `env:"SUBCATEGORY_BASE_URL"`
	APIKey  string        `env:"SUBCATEGORY_API_KEY"`
	Timeout time.Duration `env:"SUBCATEGORY_TIMEOUT" env-default:"5s"`
}

type ListingsConfig struct {
	FeaturedLimit int `env:"FEATURED_LIMIT" env-default:"8"`
	LatestLimit   int `env:"LATEST_LIMIT" env-default:"8"`
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("cannot read config from environment: " + err.Error())
	}
	return cfg
}

// Load читает конфигурацию из окружения и проверяет согласованность полей.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
