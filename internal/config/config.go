package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

type AppConfig struct {
	API      *APIConfig
	Gin      *GinConfig
	Postgres *PostgresConfig
	Logger   *LoggerConfig
}

type APIConfig struct {
	Environment        string
	Port               string
	BaseURL            string
	AllowedCORSDomains []string
	JWTSigningKey      string
}

type GinConfig struct {
	Mode string
}

type PostgresConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	DB          string
	SSLMode     string
	AutoMigrate bool
}

type LoggerConfig struct {
	Level string
}

func (c *AppConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.API, validation.Required),
		validation.Field(&c.Gin, validation.Required),
		validation.Field(&c.Postgres, validation.Required),
		validation.Field(&c.Logger, validation.Required),
	)
}

func (c *APIConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Environment, validation.Required, validation.In(EnvDevelopment, EnvStaging, EnvProduction)),
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.AllowedCORSDomains, validation.Required),
		validation.Field(&c.JWTSigningKey, validation.Required),
	)
}

func (c *GinConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Mode, validation.Required, validation.In("debug", "release", "test")),
	)
}

func (c *PostgresConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.User, validation.Required),
		validation.Field(&c.DB, validation.Required),
	)
}

func (c *LoggerConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Level, validation.In("debug", "info", "warn", "error")),
	)
}

// Load reads the YAML file at path. Environment variables override it, with
// dots replaced by underscores, so POSTGRES_HOST sets postgres.host.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.environment", EnvDevelopment)
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.allowedcorsdomains", []string{"http://localhost:3000"})
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("logger.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, restart to apply it", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return conf, nil
}
