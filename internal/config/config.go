package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// StorageDriver тип хранилища снапшотов
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Storage StorageConfig `toml:"storage"`
	Booking BookingConfig `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пустая строка или "stdout" - вывод в stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StorageConfig настройки хранилища снапшотов состояния
type StorageConfig struct {
	Driver   string         `toml:"driver"` // "file" или "postgres"
	File     FileConfig     `toml:"file"`
	Database DatabaseConfig `toml:"database"`
}

// FileConfig настройки файлового хранилища снапшотов
type FileConfig struct {
	Path string `toml:"path"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BookingConfig настройки горизонта бронирования
type BookingConfig struct {
	HorizonWeeks int `toml:"horizon_weeks"` // количество недель вперед, начиная с понедельника текущей
}

// Load читает конфигурацию из TOML файла и применяет дефолтные значения
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %q: %w", path, err)
	}

	applyDefaults(cfg)

	if cfg.Storage.Driver != StorageDriverFile && cfg.Storage.Driver != StorageDriverPostgres {
		return nil, fmt.Errorf("config: unknown storage driver %q", cfg.Storage.Driver)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "appointment-service"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverFile
	}
	if cfg.Storage.File.Path == "" {
		cfg.Storage.File.Path = "data/appointment_store.json"
	}
	if cfg.Booking.HorizonWeeks == 0 {
		cfg.Booking.HorizonWeeks = 2
	}
}
