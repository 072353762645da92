package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Auth          AuthConfig          `mapstructure:"auth"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Notifications NotificationConfig  `mapstructure:"notifications"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret" envconfig:"JWT_SECRET"`
	ExpiryHours int    `mapstructure:"expiry_hours" envconfig:"JWT_EXPIRY_HOURS"`
}

type AuthConfig struct {
	// SimulatedLatency defers login and register resolution. Zero
	// disables it.
	SimulatedLatency time.Duration `mapstructure:"simulated_latency" envconfig:"AUTH_SIMULATED_LATENCY"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" envconfig:"RATE_LIMIT_RPS"`
	Burst int     `mapstructure:"burst" envconfig:"RATE_LIMIT_BURST"`
}

type NotificationConfig struct {
	TTL time.Duration `mapstructure:"ttl" envconfig:"NOTIFICATION_TTL"`
}

// LoadConfig reads config.yaml and applies environment overrides with
// the MEDSYNC prefix.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("jwt.secret", "dev-secret-change-me")
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("auth.simulated_latency", time.Second)
	viper.SetDefault("rate_limit.rps", 50.0)
	viper.SetDefault("rate_limit.burst", 100)
	viper.SetDefault("notifications.ttl", 5*time.Minute)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("medsync", &config); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	return &config, nil
}

// TokenExpiry returns the JWT lifetime as a duration.
func (c *Config) TokenExpiry() time.Duration {
	return time.Duration(c.JWT.ExpiryHours) * time.Hour
}
