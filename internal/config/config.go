package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidConfig возвращается, когда обязательные параметры не заданы
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Auth          AuthConfig          `toml:"auth"`
	Redis         RedisConfig         `toml:"redis"`
	Notifications NotificationsConfig `toml:"notifications"`
	SMTP          SMTPConfig          `toml:"smtp"`
	Booking       BookingConfig       `toml:"booking"`
	Translations  TranslationsConfig  `toml:"translations"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthMode способ получения личности пользователя
type AuthMode string

const (
	// AuthModeHeaders доверять заголовкам X-User-ID / X-User-Role от шлюза
	AuthModeHeaders AuthMode = "headers"
	// AuthModeSession проверять подписанный JWT из cookie или Authorization
	AuthModeSession AuthMode = "session"
)

// AuthConfig настройки идентификации
type AuthConfig struct {
	Mode          AuthMode `toml:"mode"`
	SessionSecret string   `toml:"session_secret"`
	CookieName    string   `toml:"cookie_name"`
	SessionTTL    int      `toml:"session_ttl"` // часы
}

// RedisConfig настройки Redis для очереди уведомлений
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// NotificationsConfig настройки отправки уведомлений
type NotificationsConfig struct {
	Enabled     bool `toml:"enabled"`
	PollTimeout int  `toml:"poll_timeout"` // секунды ожидания BLPOP в воркере
}

// SMTPConfig настройки почтового сервера для воркера уведомлений
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// Addr адрес SMTP сервера host:port
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BookingConfig бизнес-параметры бронирования
type BookingConfig struct {
	SerializationRetries int `toml:"serialization_retries"`
}

// TranslationsConfig путь к словарю и язык по умолчанию
type TranslationsConfig struct {
	File            string `toml:"file"`
	DefaultLanguage string `toml:"default_language"`
}

// Load читает конфигурацию из TOML файла, секреты переопределяются из окружения (.env опционален)
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"DB_PASSWORD":         &c.Database.Password,
		"REDIS_PASSWORD":      &c.Redis.Password,
		"SMTP_PASSWORD":       &c.SMTP.Password,
		"AUTH_SESSION_SECRET": &c.Auth.SessionSecret,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}
}

func (c *Config) applyDefaults() {
	defaultInt(&c.Server.ReadTimeout, 15)
	defaultInt(&c.Server.WriteTimeout, 15)
	defaultInt(&c.Server.IdleTimeout, 60)
	defaultInt(&c.Server.ShutdownTimeout, 10)
	defaultInt(&c.Database.Port, 5432)
	defaultInt(&c.Database.MaxOpenConns, 25)
	defaultInt(&c.Database.MaxIdleConns, 5)
	defaultInt(&c.Database.ConnMaxLifetime, 300)
	defaultInt(&c.Auth.SessionTTL, 24)
	defaultInt(&c.Notifications.PollTimeout, 5)
	defaultInt(&c.SMTP.Port, 587)
	defaultInt(&c.Booking.SerializationRetries, 3)

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "tourism-booking-service"
	}
	// заголовкам можно доверять только за шлюзом, поэтому по умолчанию проверяется сессия
	if c.Auth.Mode == "" {
		c.Auth.Mode = AuthModeSession
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "session"
	}
	if c.Translations.DefaultLanguage == "" {
		c.Translations.DefaultLanguage = "en"
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	switch c.Auth.Mode {
	case AuthModeHeaders:
	case AuthModeSession:
		if c.Auth.SessionSecret == "" {
			return fmt.Errorf("%w: auth.session_secret is required in session mode", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown auth.mode %q", ErrInvalidConfig, c.Auth.Mode)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}
	return nil
}

func defaultInt(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}
