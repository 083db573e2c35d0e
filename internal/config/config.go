package config

import (
	"errors"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type Config struct {
	Env        Environment   `mapstructure:"ENV"`
	Port       int           `mapstructure:"PORT"`
	DBDsn      string        `mapstructure:"DB_DSN"`
	JWTSecret  string        `mapstructure:"JWT_SECRET"`
	TokenTTL   time.Duration `mapstructure:"TOKEN_TTL"`
	CorsOrigin string        `mapstructure:"CORS_ORIGIN"`
	LogLevel   string        `mapstructure:"LOG_LEVEL"`
}

var configFile = "./configs/config.yaml"

func Get() *Config {
	if value, ok := os.LookupEnv("CONFIG_PATH"); ok {
		configFile = value
	}

	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}
	return config
}

func loadConfig(file string) (*Config, error) {
	viper.SetConfigFile(file)
	viper.AutomaticEnv()

	viper.SetDefault("ENV", string(Development))
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("DB_DSN", "hirepath.db")
	viper.SetDefault("TOKEN_TTL", "1h")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := bindEnvironmentVariables(); err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
		log.Warnf("config file %s not found, using environment only", file)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func bindEnvironmentVariables() error {
	for _, key := range []string{
		"ENV", "PORT", "DB_DSN", "JWT_SECRET", "TOKEN_TTL", "CORS_ORIGIN", "LOG_LEVEL",
	} {
		if err := viper.BindEnv(key); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.Env != Development && c.Env != Production {
		return errors.New("ENV must be development or production")
	}
	return nil
}
