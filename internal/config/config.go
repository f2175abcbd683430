package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	App           AppConfig           `toml:"app"`
	Booking       BookingConfig       `toml:"booking"`
	OTP           OTPConfig           `toml:"otp"`
	Notifications NotificationsConfig `toml:"notifications"`
	RabbitMQ      RabbitMQConfig      `toml:"rabbitmq"`
	Redis         RedisConfig         `toml:"redis"`
	Jobs          JobsConfig          `toml:"jobs"`
	CORS          CORSConfig          `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

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
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AppConfig общие параметры приложения
type AppConfig struct {
	Timezone string `toml:"timezone"`
}

// Location часовой пояс, в котором считается "сегодня"
func (a AppConfig) Location() (*time.Location, error) {
	if a.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(a.Timezone)
}

// BookingConfig параметры поиска альтернативных слотов
type BookingConfig struct {
	SuggestionCount  int `toml:"suggestion_count"`
	SuggestionWindow int `toml:"suggestion_window_days"`
}

type OTPConfig struct {
	TTLMinutes     int      `toml:"ttl_minutes"`
	AllowedDomains []string `toml:"allowed_domains"`
	SendLimit      int      `toml:"send_limit"`
	SendWindowSecs int      `toml:"send_window_seconds"`
}

// NotificationsConfig доставка писем
// provider: sendgrid | mailersend | log
// mode: queue (через RabbitMQ) | direct (синхронно с повторами)
type NotificationsConfig struct {
	Provider         string `toml:"provider"`
	Mode             string `toml:"mode"`
	FromEmail        string `toml:"from_email"`
	FromName         string `toml:"from_name"`
	SendGridAPIKey   string `toml:"sendgrid_api_key"`
	MailerSendAPIKey string `toml:"mailersend_api_key"`
	MaxAttempts      int    `toml:"max_attempts"`
	BackoffMillis    int    `toml:"backoff_ms"`
	SendTimeout      int    `toml:"send_timeout"`
}

type RabbitMQConfig struct {
	URL      string `toml:"url"`
	Queue    string `toml:"queue"`
	Prefetch int    `toml:"prefetch"`
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type JobsConfig struct {
	Enabled        bool   `toml:"enabled"`
	OTPCleanupSpec string `toml:"otp_cleanup_spec"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает TOML-файл, затем применяет переменные окружения (и .env, если он есть)
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()
	applyEnv(cfg)

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
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "hall-booking-service"},
		App:     AppConfig{Timezone: "Asia/Kolkata"},
		Booking: BookingConfig{SuggestionCount: 5, SuggestionWindow: 30},
		OTP: OTPConfig{
			TTLMinutes:     5,
			SendLimit:      5,
			SendWindowSecs: 900,
		},
		Notifications: NotificationsConfig{
			Provider:      "log",
			Mode:          "direct",
			MaxAttempts:   3,
			BackoffMillis: 500,
			SendTimeout:   10,
		},
		RabbitMQ: RabbitMQConfig{Queue: "booking.notifications", Prefetch: 10},
		Jobs:     JobsConfig{OTPCleanupSpec: "@every 10m"},
	}
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv("SENDGRID_API_KEY"); ok {
		cfg.Notifications.SendGridAPIKey = v
	}
	if v, ok := os.LookupEnv("MAILERSEND_API_KEY"); ok {
		cfg.Notifications.MailerSendAPIKey = v
	}
	if v, ok := os.LookupEnv("RABBITMQ_URL"); ok {
		cfg.RabbitMQ.URL = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		cfg.Redis.Password = v
	}
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 {
		errs = append(errs, errors.New("server.http_port must be positive"))
	}
	if c.Database.Port <= 0 {
		errs = append(errs, errors.New("database.port must be positive"))
	}
	if _, err := c.App.Location(); err != nil {
		errs = append(errs, fmt.Errorf("app.timezone: %w", err))
	}
	if c.Booking.SuggestionCount <= 0 {
		errs = append(errs, errors.New("booking.suggestion_count must be positive"))
	}
	if c.Booking.SuggestionWindow <= 0 {
		errs = append(errs, errors.New("booking.suggestion_window_days must be positive"))
	}
	if c.OTP.TTLMinutes <= 0 {
		errs = append(errs, errors.New("otp.ttl_minutes must be positive"))
	}
	switch c.Notifications.Provider {
	case "sendgrid", "mailersend", "log":
	default:
		errs = append(errs, fmt.Errorf("notifications.provider: unknown provider %q", c.Notifications.Provider))
	}
	switch c.Notifications.Mode {
	case "direct":
	case "queue":
		if c.RabbitMQ.URL == "" {
			errs = append(errs, errors.New("rabbitmq.url is required when notifications.mode = queue"))
		}
	default:
		errs = append(errs, fmt.Errorf("notifications.mode: unknown mode %q", c.Notifications.Mode))
	}

	return errors.Join(errs...)
}
