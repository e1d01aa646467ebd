package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Mongo     MongoConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Scheduler SchedulerConfig
	Security  SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// MongoConfig holds the document store connection settings. The pool
// bounds are part of the documented operational contract: acquiring a
// connection may block up to ServerSelectionTimeout before the request
// fails with a connectivity error.
type MongoConfig struct {
	Host                   string
	Port                   string
	Database               string
	Username               string
	Password               string
	AuthSource             string
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ServerSelectionTimeout time.Duration
}

type JWTConfig struct {
	Secret        string
	Issuer        string
	TokenDuration time.Duration
}

type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
}

type SchedulerConfig struct {
	Enabled        bool
	RollupInterval time.Duration
	LookbackDays   int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8034"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "salesdash_user"),
			Password:        getEnv("DB_PASSWORD", "salesdash_password"),
			Name:            getEnv("DB_NAME", "salesdash_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Mongo: MongoConfig{
			Host:                   getEnv("MONGO_HOST", "localhost"),
			Port:                   getEnv("MONGO_PORT", "27017"),
			Database:               getEnv("MONGO_DATABASE", "salesdash_mongo"),
			Username:               getEnv("MONGO_USERNAME", ""),
			Password:               getEnv("MONGO_PASSWORD", ""),
			AuthSource:             getEnv("MONGO_AUTH_SOURCE", "admin"),
			MaxPoolSize:            uint64(getIntEnv("MONGO_MAX_POOL_SIZE", 50)),
			MinPoolSize:            uint64(getIntEnv("MONGO_MIN_POOL_SIZE", 10)),
			MaxConnIdleTime:        getDurationEnv("MONGO_MAX_IDLE_TIME", 45*time.Second),
			ServerSelectionTimeout: getDurationEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5*time.Second),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			Issuer:        getEnv("JWT_ISSUER", "salesdash-api"),
			TokenDuration: getDurationEnv("JWT_TOKEN_DURATION", 24*time.Hour),
		},
		Auth: AuthConfig{
			AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
			AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		Scheduler: SchedulerConfig{
			Enabled:        getBoolEnv("ROLLUP_SCHEDULER_ENABLED", true),
			RollupInterval: getDurationEnv("ROLLUP_SCHEDULER_INTERVAL", 10*time.Minute),
			LookbackDays:   getIntEnv("ROLLUP_LOOKBACK_DAYS", 90),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.JWT.Secret == "" {
		if config.IsProduction() {
			log.Fatal("JWT_SECRET environment variable must be set in production environments")
		}
		log.Println("Development environment: using default JWT secret (set JWT_SECRET for anything beyond local use)")
		config.JWT.Secret = "salesdash-development-secret"
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URI builds the document store connection string. The database name is
// not part of the URI; it is selected by the store wrapper.
func (c *MongoConfig) URI() string {
	if c.Username != "" && c.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/?authSource=%s",
			url.QueryEscape(c.Username), url.QueryEscape(c.Password), c.Host, c.Port, c.AuthSource)
	}
	return fmt.Sprintf("mongodb://%s:%s/", c.Host, c.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
