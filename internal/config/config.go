package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла
const EnvPrefix = "DMAR"

// Драйверы хранилища локальной истории бронирований
const (
	HistoryDriverMemory   = "memory"
	HistoryDriverPostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server" envconfig:"SERVER"`
	Logs     LogsConfig     `toml:"logs" envconfig:"LOGS"`
	Backend  BackendConfig  `toml:"backend" envconfig:"BACKEND"`
	History  HistoryConfig  `toml:"history" envconfig:"HISTORY"`
	Database DatabaseConfig `toml:"database" envconfig:"DATABASE"`
	Metrics  MetricsConfig  `toml:"metrics" envconfig:"METRICS"`
	I18n     I18nConfig     `toml:"i18n" envconfig:"I18N"`
	Sessions SessionsConfig `toml:"sessions" envconfig:"SESSIONS"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" envconfig:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file" envconfig:"FILE"`
	Level string `toml:"level" envconfig:"LEVEL"`
}

// BackendConfig параметры подключения к CRUD backend (каталог, заказы, переводы)
type BackendConfig struct {
	URL           string `toml:"url" envconfig:"URL"`
	Timeout       int    `toml:"timeout" envconfig:"TIMEOUT"`
	SessionHeader string `toml:"session_header" envconfig:"SESSION_HEADER"`
}

// HistoryConfig параметры локальной истории бронирований
type HistoryConfig struct {
	Driver string `toml:"driver" envconfig:"DRIVER"`
}

// DatabaseConfig параметры PostgreSQL (используется только драйвером истории postgres)
type DatabaseConfig struct {
	Host            string `toml:"host" envconfig:"HOST"`
	Port            int    `toml:"port" envconfig:"PORT"`
	User            string `toml:"user" envconfig:"USER"`
	Password        string `toml:"password" envconfig:"PASSWORD"`
	DBName          string `toml:"dbname" envconfig:"DBNAME"`
	SSLMode         string `toml:"sslmode" envconfig:"SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" envconfig:"CONN_MAX_LIFETIME"`
}

// MetricsConfig параметры prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" envconfig:"ENABLED"`
	Path        string `toml:"path" envconfig:"PATH"`
	ServiceName string `toml:"service_name" envconfig:"SERVICE_NAME"`
}

// I18nConfig параметры языков интерфейса
type I18nConfig struct {
	DefaultLanguage string   `toml:"default_language" envconfig:"DEFAULT_LANGUAGE"`
	Supported       []string `toml:"supported" envconfig:"SUPPORTED"`
}

// SessionsConfig время жизни сессий в памяти (в секундах).
// Сессия без запросов дольше IdleTTL удаляется; отправляемые бронирования не трогаются.
type SessionsConfig struct {
	IdleTTL         int `toml:"idle_ttl" envconfig:"IDLE_TTL"`
	CleanupInterval int `toml:"cleanup_interval" envconfig:"CLEANUP_INTERVAL"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Backend: BackendConfig{
			URL:           "http://localhost:8000/api/v1",
			Timeout:       10,
			SessionHeader: "X-Session-ID",
		},
		History: HistoryConfig{
			Driver: HistoryDriverMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "dmar_booking",
		},
		I18n: I18nConfig{
			DefaultLanguage: "en",
			Supported:       []string{"en", "es", "de"},
		},
		Sessions: SessionsConfig{
			IdleTTL:         7200,
			CleanupInterval: 60,
		},
	}
}

// Load загружает конфигурацию из TOML файла и применяет переопределения из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Backend.URL == "" {
		return fmt.Errorf("%w: backend.url is required", ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(c.Backend.URL); err != nil {
		return fmt.Errorf("%w: backend.url: %v", ErrInvalidConfig, err)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("%w: backend.timeout must be positive", ErrInvalidConfig)
	}

	switch c.History.Driver {
	case HistoryDriverMemory, HistoryDriverPostgres:
	default:
		return fmt.Errorf("%w: unknown history.driver %q", ErrInvalidConfig, c.History.Driver)
	}

	if c.Sessions.IdleTTL <= 0 || c.Sessions.CleanupInterval <= 0 {
		return fmt.Errorf("%w: sessions.idle_ttl and sessions.cleanup_interval must be positive", ErrInvalidConfig)
	}

	if len(c.I18n.Supported) == 0 {
		return fmt.Errorf("%w: i18n.supported must not be empty", ErrInvalidConfig)
	}
	if !slices.Contains(c.I18n.Supported, c.I18n.DefaultLanguage) {
		return fmt.Errorf("%w: i18n.default_language %q is not supported", ErrInvalidConfig, c.I18n.DefaultLanguage)
	}

	return nil
}
