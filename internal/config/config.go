package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port"`
		Mode          string `yaml:"mode"`
		TemplatesGlob string `yaml:"templates_glob"`
		StaticDir     string `yaml:"static_dir"`
	} `yaml:"server"`

	Database struct {
		URL             string `yaml:"url"`
		Host            string `yaml:"host"`
		Port            string `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		DBName          string `yaml:"dbname"`
		SSLMode         string `yaml:"sslmode"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
		AutoMigrate     bool   `yaml:"auto_migrate"`
		Seed            bool   `yaml:"seed"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
}

// LoadConfig layers defaults, the YAML file at configPath (if present), a
// .env file in the working directory (if present) and process environment
// variables, in that order of increasing precedence.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// godotenv.Load never overrides variables that are already set.
	_ = godotenv.Load()

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.TemplatesGlob = "templates/**/*.html"
	config.Server.StaticDir = "static"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "mymaterio"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Logging.Level = "info"
	config.Logging.Pretty = true
}

func loadFromEnv(config *Config) error {
	config.Server.Port = GetEnv("SERVER_PORT", GetEnv("PORT", config.Server.Port))
	config.Server.Mode = GetEnv("SERVER_MODE", config.Server.Mode)
	config.Server.TemplatesGlob = GetEnv("TEMPLATES_GLOB", config.Server.TemplatesGlob)
	config.Server.StaticDir = GetEnv("STATIC_DIR", config.Server.StaticDir)

	config.Database.URL = GetEnv("DATABASE_URL", GetEnv("POSTGRES_URL", config.Database.URL))
	config.Database.Host = GetEnv("DB_HOST", config.Database.Host)
	config.Database.Port = GetEnv("DB_PORT", config.Database.Port)
	config.Database.User = GetEnv("DB_USER", config.Database.User)
	config.Database.Password = GetEnv("DB_PASSWORD", config.Database.Password)
	config.Database.DBName = GetEnv("DB_NAME", config.Database.DBName)
	config.Database.SSLMode = GetEnv("DB_SSLMODE", config.Database.SSLMode)
	config.Database.ConnMaxLifetime = GetEnv("DB_CONN_MAX_LIFETIME", config.Database.ConnMaxLifetime)
	config.Database.AutoMigrate = GetEnvAsBool("DB_AUTO_MIGRATE", config.Database.AutoMigrate)
	config.Database.Seed = GetEnvAsBool("DB_SEED", config.Database.Seed)

	var err error
	if config.Database.MaxIdleConns, err = getEnvAsIntStrict("DB_MAX_IDLE_CONNS", config.Database.MaxIdleConns); err != nil {
		return err
	}
	if config.Database.MaxOpenConns, err = getEnvAsIntStrict("DB_MAX_OPEN_CONNS", config.Database.MaxOpenConns); err != nil {
		return err
	}

	config.Logging.Level = GetEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Pretty = GetEnvAsBool("LOG_PRETTY", config.Logging.Pretty)

	return nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	switch config.Server.Mode {
	case "development", "production", "test":
	default:
		return fmt.Errorf("server mode must be development, production or test, got %q", config.Server.Mode)
	}

	if config.Database.URL == "" && (config.Database.Host == "" || config.Database.DBName == "") {
		return fmt.Errorf("database url or host and name are required")
	}

	if config.Database.MaxOpenConns > 0 && config.Database.MaxIdleConns > config.Database.MaxOpenConns {
		return fmt.Errorf("max idle connections (%d) exceed max open connections (%d)",
			config.Database.MaxIdleConns, config.Database.MaxOpenConns)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid connection max lifetime: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns DATABASE_URL when set, otherwise a
// URL assembled from the discrete connection fields.
func (c *Config) GetPostgresConnectionString() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// ConnMaxLifetime is validated at load time, so the parse cannot fail here.
func (c *Config) ConnMaxLifetime() time.Duration {
	d, _ := time.ParseDuration(c.Database.ConnMaxLifetime)
	return d
}

func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}

// GetEnv gets a non-empty environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsBool accepts true/false, 1/0 and yes/no; anything else keeps the default.
func GetEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(GetEnv(key, "")) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

func getEnvAsIntStrict(key string, defaultValue int) (int, error) {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}
