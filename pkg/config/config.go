package config

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Cache backends.
const (
	CacheNone     = "none"
	CacheMemory   = "memory"
	CachePostgres = "postgres"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Telegram struct {
		Token     string        `env:"TELEGRAM_TOKEN" env-required:"true" env-description:"bot token issued by @BotFather"`
		APIURL    string        `env:"TELEGRAM_API_URL" env-default:"https://api.telegram.org"`
		Timeout   time.Duration `env:"TELEGRAM_TIMEOUT" env-default:"30s"`
		ParseMode string        `env:"TELEGRAM_PARSE_MODE" env-description:"default parse mode: HTML, MarkdownV2 or Markdown"`
	}
	Throttle struct {
		Enabled bool `env:"THROTTLE_ENABLED" env-default:"true"`
		// Messages per second across all chats.
		Global int `env:"THROTTLE_GLOBAL" env-default:"30"`
		// Messages per second to one private chat.
		PrivateChat int `env:"THROTTLE_PRIVATE_CHAT" env-default:"1"`
		// Messages per minute to one group.
		Group int `env:"THROTTLE_GROUP" env-default:"20"`
	}
	Retry struct {
		Enabled         bool          `env:"RETRY_ENABLED" env-default:"true"`
		MaxRetries      uint64        `env:"RETRY_MAX_RETRIES" env-default:"3"`
		InitialInterval time.Duration `env:"RETRY_INITIAL_INTERVAL" env-default:"500ms"`
		MaxInterval     time.Duration `env:"RETRY_MAX_INTERVAL" env-default:"5s"`
		Multiplier      float64       `env:"RETRY_MULTIPLIER" env-default:"1.5"`
	}
	Cache struct {
		Backend         string        `env:"CACHE_BACKEND" env-default:"memory" env-description:"none, memory or postgres"`
		TTL             time.Duration `env:"CACHE_TTL" env-default:"5m"`
		Methods         []string      `env:"CACHE_METHODS" env-default:"getMe" env-separator:","`
		CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" env-default:"10m"`
	}
	Trace struct {
		Requests  bool `env:"TRACE_REQUESTS"`
		Responses bool `env:"TRACE_RESPONSES"`
	}
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// New loads the configuration from the environment once per process.
func New() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = Load()
	})
	return cfg, loadErr
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}
	return c, nil
}

// GetDSN returns the PostgreSQL connection URL.
func (c *Config) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Postgres.User, c.Postgres.Pass),
		Host:     fmt.Sprintf("%s:%d", c.Postgres.Host, c.Postgres.Port),
		Path:     c.Postgres.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.Postgres.SslMode),
	}
	return u.String()
}

func (c *Config) IsProduction() bool { return c.App.Env == "production" }
