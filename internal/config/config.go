package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Notifications NotificationsConfig `toml:"notifications"`
	WhatsApp      WhatsAppConfig      `toml:"whatsapp"`
	Reniec        ReniecConfig        `toml:"reniec"`
	Mikrotik      MikrotikConfig      `toml:"mikrotik"`
	Adl           AdlConfig           `toml:"adl"`
	Redis         RedisConfig         `toml:"redis"`
}

// ServerConfig HTTP-сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig PostgreSQL
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
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

// LogsConfig логирование
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// NotificationsConfig диспетчер уведомлений
type NotificationsConfig struct {
	Workers      int `toml:"workers"`
	QueueSize    int `toml:"queue_size"`
	RetryDelayMs int `toml:"retry_delay_ms"`
	DrainTimeout int `toml:"drain_timeout"`
}

// WhatsAppConfig WhatsApp Cloud API
type WhatsAppConfig struct {
	BaseURL       string `toml:"base_url"`
	APIVersion    string `toml:"api_version"`
	PhoneNumberID string `toml:"phone_number_id"`
	Token         string `toml:"token"`
	Timeout       int    `toml:"timeout"`
}

// Enabled true, если заданы токен и номер отправителя
func (w WhatsAppConfig) Enabled() bool {
	return w.Token != "" && w.PhoneNumberID != ""
}

// ReniecConfig поиск по DNI
type ReniecConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"`
}

// MikrotikConfig RouterOS REST API
type MikrotikConfig struct {
	URL      string `toml:"url"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Timeout  int    `toml:"timeout"`
}

// AdlConfig API отключения услуги
type AdlConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// RedisConfig кэш поиска по DNI
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// Seconds переводит секунды из конфига в time.Duration
func Seconds(v int) time.Duration {
	return time.Duration(v) * time.Second
}

// Load загружает конфигурацию из TOML-файла
// Перед чтением подгружается .env (если есть), секреты из окружения перекрывают значения файла
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "smc-fieldservice",
		},
		Notifications: NotificationsConfig{
			Workers:      2,
			QueueSize:    100,
			RetryDelayMs: 2000,
			DrainTimeout: 10,
		},
		WhatsApp: WhatsAppConfig{
			BaseURL:    "https://graph.facebook.com",
			APIVersion: "v19.0",
			Timeout:    10,
		},
		Reniec:   ReniecConfig{Timeout: 5},
		Mikrotik: MikrotikConfig{Timeout: 5},
		Adl:      AdlConfig{Timeout: 10},
		Redis:    RedisConfig{TTL: 86400},
	}
}

// applyEnv переопределяет значения переменными окружения
func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"DB_HOST":                  &cfg.Database.Host,
		"DB_USER":                  &cfg.Database.User,
		"DB_PASSWORD":              &cfg.Database.Password,
		"DB_NAME":                  &cfg.Database.DBName,
		"LOG_LEVEL":                &cfg.Logs.Level,
		"WHATSAPP_TOKEN":           &cfg.WhatsApp.Token,
		"WHATSAPP_PHONE_NUMBER_ID": &cfg.WhatsApp.PhoneNumberID,
		"RENIEC_URL":               &cfg.Reniec.URL,
		"RENIEC_API_KEY":           &cfg.Reniec.APIKey,
		"ROUTER_URL":               &cfg.Mikrotik.URL,
		"ROUTER_USER":              &cfg.Mikrotik.User,
		"ROUTER_PASSWORD":          &cfg.Mikrotik.Password,
		"ADL_API_URL":              &cfg.Adl.URL,
		"REDIS_ADDR":               &cfg.Redis.Addr,
		"REDIS_PASSWORD":           &cfg.Redis.Password,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"DB_PORT":   &cfg.Database.Port,
		"HTTP_PORT": &cfg.Server.HTTPPort,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", key, v, err)
		}
		*dst = n
	}

	return nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" {
		return errors.New("database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("database.dbname is required")
	}
	if c.Database.User == "" {
		return errors.New("database.user is required")
	}

	timeouts := map[string]int{
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
		"whatsapp.timeout":        c.WhatsApp.Timeout,
		"reniec.timeout":          c.Reniec.Timeout,
		"mikrotik.timeout":        c.Mikrotik.Timeout,
		"adl.timeout":             c.Adl.Timeout,
	}
	for name, v := range timeouts {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}

	if c.Redis.Addr != "" && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be positive, got %d", c.Redis.TTL)
	}
	if c.Notifications.QueueSize < 0 || c.Notifications.Workers < 0 {
		return errors.New("notifications.workers and notifications.queue_size must not be negative")
	}

	return nil
}
