package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"planets-api/internal/shared/utils"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Mongo     MongoConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	Site      SiteConfig
}

type ServerConfig struct {
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type StoreConfig struct {
	Driver string
}

type MongoConfig struct {
	URI            string
	Username       string
	Password       string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsPath  string
}

type RedisConfig struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
	Debug          bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

type SiteConfig struct {
	IndexPath   string
	APIDocsPath string
	StaticDir   string
}

// Load reads an optional .env file followed by the process environment and
// returns a validated configuration.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	config := load()

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func load() *Config {
	server := loadServerConfig()

	return &Config{
		Server:    server,
		Store:     StoreConfig{Driver: utils.GetEnv("STORE_DRIVER", StoreDriverMongo)},
		Mongo:     loadMongoConfig(),
		Database:  loadDatabaseConfig(),
		Redis:     loadRedisConfig(),
		CORS:      loadCORSConfig(),
		RateLimit: loadRateLimitConfig(),
		Logging: LoggingConfig{
			Level:      utils.GetEnv("LOG_LEVEL", "info"),
			JSONFormat: server.Environment == "production",
		},
		Site: SiteConfig{
			IndexPath:   utils.GetEnv("SITE_INDEX_PATH", "public/index.html"),
			APIDocsPath: utils.GetEnv("SITE_API_DOCS_PATH", "oas.json"),
			StaticDir:   utils.GetEnv("SITE_STATIC_DIR", "public"),
		},
	}
}

func loadServerConfig() ServerConfig {
	readTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_READ_TIMEOUT_SECONDS", "15"))
	writeTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_WRITE_TIMEOUT_SECONDS", "15"))
	idleTimeout, _ := strconv.Atoi(utils.GetEnv("SERVER_IDLE_TIMEOUT_SECONDS", "60"))

	return ServerConfig{
		Port:         utils.GetEnv("SERVER_PORT", "3000"),
		Environment:  utils.GetEnv("ENVIRONMENT", utils.GetEnv("NODE_ENV", "development")),
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
		IdleTimeout:  time.Duration(idleTimeout) * time.Second,
	}
}

func loadMongoConfig() MongoConfig {
	connectTimeout, _ := strconv.Atoi(utils.GetEnv("MONGO_CONNECT_TIMEOUT_SECONDS", "10"))
	if connectTimeout <= 0 {
		connectTimeout = 10
	}

	return MongoConfig{
		URI:            utils.GetEnv("MONGO_URI", "mongodb://localhost:27017"),
		Username:       os.Getenv("MONGO_USERNAME"),
		Password:       os.Getenv("MONGO_PASSWORD"),
		Database:       utils.GetEnv("MONGO_DATABASE", "test"),
		Collection:     utils.GetEnv("MONGO_COLLECTION", "planets"),
		ConnectTimeout: time.Duration(connectTimeout) * time.Second,
	}
}

func loadDatabaseConfig() DatabaseConfig {
	maxOpenConns, _ := strconv.Atoi(utils.GetEnv("DB_MAX_OPEN_CONNS", "25"))
	maxIdleConns, _ := strconv.Atoi(utils.GetEnv("DB_MAX_IDLE_CONNS", "5"))
	connMaxLifetime, _ := strconv.Atoi(utils.GetEnv("DB_CONN_MAX_LIFETIME_MINUTES", "5"))

	return DatabaseConfig{
		Host:            utils.GetEnv("DB_HOST", "localhost"),
		Port:            utils.GetEnv("DB_PORT", "5432"),
		User:            utils.GetEnv("DB_USER", "postgres"),
		Password:        utils.GetEnv("DB_PASSWORD", "postgres"),
		Name:            utils.GetEnv("DB_NAME", "planets"),
		SSLMode:         utils.GetEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: time.Duration(connMaxLifetime) * time.Minute,
		MigrationsPath:  utils.GetEnv("DB_MIGRATIONS_PATH", "migrations"),
	}
}

func loadRedisConfig() RedisConfig {
	db, _ := strconv.Atoi(utils.GetEnv("REDIS_DB", "0"))

	return RedisConfig{
		URL:      utils.GetEnv("REDIS_URL", ""),
		Host:     utils.GetEnv("REDIS_HOST", "localhost"),
		Port:     utils.GetEnv("REDIS_PORT", "6379"),
		Password: utils.GetEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func loadCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: utils.GetEnvList("CORS_ALLOWED_ORIGINS", "*"),
		Debug:          utils.GetEnv("CORS_DEBUG", "") == "true",
	}
}

func loadRateLimitConfig() RateLimitConfig {
	requestsPerSecond, _ := strconv.ParseFloat(utils.GetEnv("RATE_LIMIT_REQUESTS_PER_SECOND", "10"), 64)
	burstSize, _ := strconv.Atoi(utils.GetEnv("RATE_LIMIT_BURST_SIZE", "20"))

	return RateLimitConfig{
		Enabled:           utils.GetEnv("RATE_LIMIT_ENABLED", "false") == "true",
		RequestsPerSecond: requestsPerSecond,
		BurstSize:         burstSize,
		TrustProxy:        utils.GetEnv("RATE_LIMIT_TRUST_PROXY", "false") == "true",
	}
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	switch c.Store.Driver {
	case StoreDriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required")
		}
		if c.Mongo.Collection == "" {
			return fmt.Errorf("MONGO_COLLECTION is required")
		}
	case StoreDriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case StoreDriverRedis:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.BurstSize <= 0) {
		return fmt.Errorf("RATE_LIMIT_REQUESTS_PER_SECOND and RATE_LIMIT_BURST_SIZE must be positive")
	}

	return nil
}

// ConnectionString returns the lib/pq DSN for the postgres store driver.
func (c *Config) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}
