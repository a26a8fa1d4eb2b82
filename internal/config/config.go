// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Remote     RemoteConfig     `mapstructure:"remote"`
	Modem      ModemConfig      `mapstructure:"modem"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	AutoSend   AutoSendConfig   `mapstructure:"autosend"`
	Network    NetworkConfig    `mapstructure:"network"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	AuthToken    string `mapstructure:"auth_token"`
}

type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname"`
	SSLMode        string `mapstructure:"sslmode"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// InFlightTTL is how long (seconds) a dispatched message is protected from a second send.
	InFlightTTL int `mapstructure:"inflight_ttl"`
	// OutcomeTTL is how long (seconds) the last dispatch outcome is kept.
	OutcomeTTL int `mapstructure:"outcome_ttl"`
}

// RemoteConfig describes the server that owns the SMS work queue.
type RemoteConfig struct {
	BaseURL        string               `mapstructure:"base_url"`
	AuthToken      string               `mapstructure:"auth_token"`
	Timeout        int                  `mapstructure:"timeout"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// ModemConfig lists the modems, one per SIM slot.
type ModemConfig struct {
	AuthKey        string               `mapstructure:"auth_key"`
	Timeout        int                  `mapstructure:"timeout"`
	DefaultSlot    int                  `mapstructure:"default_slot"`
	CountryCode    string               `mapstructure:"country_code"`
	Slots          []SimSlotConfig      `mapstructure:"slots"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type SimSlotConfig struct {
	Slot           int    `mapstructure:"slot"`
	SubscriptionID int    `mapstructure:"subscription_id"`
	DisplayName    string `mapstructure:"display_name"`
	CarrierName    string `mapstructure:"carrier_name"`
	Number         string `mapstructure:"number"`
	URL            string `mapstructure:"url"`
}

// GatewayConfig tunes the controller and its sync queue.
type GatewayConfig struct {
	FetchLimit       int `mapstructure:"fetch_limit"`
	RecentLimit      int `mapstructure:"recent_limit"`
	SyncIntervalSec  int `mapstructure:"sync_interval"`
	MaxSyncRetries   int `mapstructure:"max_sync_retries"`
	SyncItemDelayMs  int `mapstructure:"sync_item_delay_ms"`
	SendSpacingMs    int `mapstructure:"send_spacing_ms"`
	RefreshDelayMs   int `mapstructure:"refresh_delay_ms"`
	ReloadDelayMs    int `mapstructure:"reload_delay_ms"`
	NetworkCheckSec  int `mapstructure:"network_check_interval"`
	StatsRecentLimit int `mapstructure:"stats_recent_limit"`
}

type AutoSendConfig struct {
	IntervalSec    int `mapstructure:"interval"`
	BatchSize      int `mapstructure:"batch_size"`
	TaskTimeoutSec int `mapstructure:"task_timeout"`
}

type NetworkConfig struct {
	DialTimeout int `mapstructure:"dial_timeout"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.auth_token", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "smstask")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "smstask")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.migrations_path", "./migrations")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.inflight_ttl", 600)
	v.SetDefault("redis.outcome_ttl", 86400)
	v.SetDefault("remote.base_url", "http://192.168.1.113:3000/")
	v.SetDefault("remote.auth_token", "")
	v.SetDefault("remote.timeout", 15)
	v.SetDefault("remote.circuit_breaker.max_requests", 3)
	v.SetDefault("remote.circuit_breaker.interval", 60)
	v.SetDefault("remote.circuit_breaker.timeout", 30)
	v.SetDefault("remote.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("remote.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("modem.auth_key", "")
	v.SetDefault("modem.timeout", 30)
	v.SetDefault("modem.default_slot", 0)
	v.SetDefault("modem.country_code", "237")
	v.SetDefault("modem.circuit_breaker.max_requests", 1)
	v.SetDefault("modem.circuit_breaker.interval", 60)
	v.SetDefault("modem.circuit_breaker.timeout", 60)
	v.SetDefault("modem.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("modem.circuit_breaker.consecutive_fails", 5)
	v.SetDefault("gateway.fetch_limit", 70)
	v.SetDefault("gateway.recent_limit", 10)
	v.SetDefault("gateway.sync_interval", 30)
	v.SetDefault("gateway.max_sync_retries", 3)
	v.SetDefault("gateway.sync_item_delay_ms", 1000)
	v.SetDefault("gateway.send_spacing_ms", 5500)
	v.SetDefault("gateway.refresh_delay_ms", 5000)
	v.SetDefault("gateway.reload_delay_ms", 1000)
	v.SetDefault("gateway.network_check_interval", 30)
	v.SetDefault("gateway.stats_recent_limit", 10)
	v.SetDefault("autosend.interval", 15)
	v.SetDefault("autosend.batch_size", 50)
	v.SetDefault("autosend.task_timeout", 600)
	v.SetDefault("network.dial_timeout", 3)
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvPrefix("SMSTASK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the values the gateway cannot run without.
func (c *Config) Validate() error {
	if c.Remote.BaseURL == "" {
		return fmt.Errorf("remote.base_url is required")
	}
	if c.Gateway.MaxSyncRetries < 1 {
		return fmt.Errorf("gateway.max_sync_retries must be at least 1, got %d", c.Gateway.MaxSyncRetries)
	}
	seen := make(map[int]bool, len(c.Modem.Slots))
	for _, s := range c.Modem.Slots {
		if s.Slot < 0 {
			return fmt.Errorf("modem slot index must be >= 0, got %d", s.Slot)
		}
		if seen[s.Slot] {
			return fmt.Errorf("modem slot %d configured twice", s.Slot)
		}
		if s.URL == "" {
			return fmt.Errorf("modem slot %d has no url", s.Slot)
		}
		seen[s.Slot] = true
	}
	return nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the PostgreSQL URL form used by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func (g GatewayConfig) SyncInterval() time.Duration {
	return time.Duration(g.SyncIntervalSec) * time.Second
}

func (g GatewayConfig) NetworkInterval() time.Duration {
	return time.Duration(g.NetworkCheckSec) * time.Second
}

func (g GatewayConfig) SyncItemDelay() time.Duration { return ms(g.SyncItemDelayMs) }
func (g GatewayConfig) SendSpacing() time.Duration   { return ms(g.SendSpacingMs) }
func (g GatewayConfig) RefreshDelay() time.Duration  { return ms(g.RefreshDelayMs) }
func (g GatewayConfig) ReloadDelay() time.Duration   { return ms(g.ReloadDelayMs) }
