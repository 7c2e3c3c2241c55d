package config

import (
	"fmt"
	"strings"
	"sync"

	"gridmeet/core/constants"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Grid     GridConfig     `mapstructure:"grid"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GridConfig bounds the slot grid. MaxSpanDays == 0 means the date range is
// not capped.
type GridConfig struct {
	SlotsPerHour int `mapstructure:"slots_per_hour"`
	DayStartHour int `mapstructure:"day_start_hour"`
	DayEndHour   int `mapstructure:"day_end_hour"`
	MaxSpanDays  int `mapstructure:"max_span_days"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

var (
	mu       sync.RWMutex
	instance *Config
)

// Load reads configuration from the environment (APP_ prefix, e.g.
// APP_SERVER_PORT) on top of the defaults and installs the singleton.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7070)
	v.SetDefault("server.base_url", "")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "gridmeet")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("grid.slots_per_hour", constants.DefaultSlotsPerHour)
	v.SetDefault("grid.day_start_hour", constants.DefaultDayStartHour)
	v.SetDefault("grid.day_end_hour", constants.DefaultDayEndHour)
	v.SetDefault("grid.max_span_days", constants.DefaultMaxSpanDays)

	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	mu.Lock()
	instance = &cfg
	mu.Unlock()

	return &cfg, nil
}

func validate(cfg *Config) error {
	g := cfg.Grid
	if g.SlotsPerHour <= 0 {
		return fmt.Errorf("grid.slots_per_hour must be positive, got %d", g.SlotsPerHour)
	}
	if g.DayStartHour < 0 || g.DayEndHour > 24 || g.DayStartHour >= g.DayEndHour {
		return fmt.Errorf("invalid grid hour window %d-%d", g.DayStartHour, g.DayEndHour)
	}
	if g.MaxSpanDays < 0 {
		return fmt.Errorf("grid.max_span_days must not be negative, got %d", g.MaxSpanDays)
	}
	return nil
}

// Get returns the loaded config. It panics when called before Load; use
// GetSafe on paths that may run during startup.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config: Get called before Load")
	}
	return instance
}

func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return instance, instance != nil
}

// Set installs a config directly. Intended for tests.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}
