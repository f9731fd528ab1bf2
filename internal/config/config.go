package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int    `mapstructure:"port" envconfig:"PORT"`
	Mode string `mapstructure:"mode" envconfig:"GIN_MODE"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url" envconfig:"MONGO_URL"`
	Database string `mapstructure:"database" envconfig:"MONGO_DATABASE"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret" envconfig:"JWT_SECRET"`
}

type AuthConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost" envconfig:"BCRYPT_COST"`
}

type UploadConfig struct {
	Dir string `mapstructure:"dir" envconfig:"UPLOAD_DIR"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" envconfig:"LOG_LEVEL"`
	Pretty bool   `mapstructure:"pretty" envconfig:"LOG_PRETTY"`
}

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Upload UploadConfig `mapstructure:"upload"`
	Log    LogConfig    `mapstructure:"log"`
}

func setDefaults() {
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("mongo.url", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "clinic")
	viper.SetDefault("auth.bcrypt_cost", 10)
	viper.SetDefault("upload.dir", "public/uploads")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", false)
}

// Load resolves configuration in three layers: built-in defaults, an optional
// config.yaml, and environment variables (strongest). A missing JWT secret is
// a hard startup failure: every issued token would otherwise be signed with an
// empty key.
func Load() (*Config, error) {
	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return &cfg, nil
}
