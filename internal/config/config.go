package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type JWTConfig struct {
	AccessSecret       string `mapstructure:"access_secret"`
	RefreshSecret      string `mapstructure:"refresh_secret"`
	AccessExpireHours  int    `mapstructure:"access_expire_hours"`
	RefreshExpireHours int    `mapstructure:"refresh_expire_hours"`
}

type AuthConfig struct {
	// TokenStore selects where refresh tokens live: "memory" keeps them for
	// the lifetime of the process, "database" survives restarts.
	TokenStore           string `mapstructure:"token_store"`
	SweepIntervalMinutes int    `mapstructure:"sweep_interval_minutes"`
}

func (c *JWTConfig) AccessTTL() time.Duration {
	return time.Duration(c.AccessExpireHours) * time.Hour
}

func (c *JWTConfig) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshExpireHours) * time.Hour
}

func (c *AuthConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalMinutes) * time.Minute
}

func setDefaults() {
	viper.SetDefault("server.port", ":8080")
	viper.SetDefault("database.dsn", "partykeep:partykeep@tcp(127.0.0.1:3306)/partykeep?charset=utf8mb4&parseTime=True&loc=Local")
	viper.SetDefault("jwt.access_secret", "reallysecretaccesssecret")
	viper.SetDefault("jwt.refresh_secret", "reallysecretrefreshsecret")
	viper.SetDefault("jwt.access_expire_hours", 24)
	viper.SetDefault("jwt.refresh_expire_hours", 720)
	viper.SetDefault("auth.token_store", "memory")
	viper.SetDefault("auth.sweep_interval_minutes", 60)
}

// LoadConfig reads config.yaml from the working directory. Every key has a
// default and can be overridden by a PARTYKEEP_* env var, so a missing file
// is not an error (the usual case on shared hosting where only env vars are
// settable).
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("PARTYKEEP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}
