package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Email     EmailConfig
	Redis     RedisConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Storage   StorageConfig
	Cache     CacheConfig
	Seed      SeedConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	Environment    string
	AllowedOrigins []string
	MigrationsPath string
}

// IsProduction reports whether NODE_ENV/APP_ENV selected production.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	DSN      string
	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
}

type EmailConfig struct {
	Enabled        bool
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	AdminEmail     string
	CompanyName    string
	SiteURL        string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// ClusterAddrs switches to a cluster client when set.
	ClusterAddrs []string
	// Pool and timeout settings
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

type RateLimitConfig struct {
	Requests  int
	Window    time.Duration
	KeyPrefix string
}

type StorageConfig struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
	Folder          string
	UsePathStyle    bool
	MaxUploadBytes  int64
}

type CacheConfig struct {
	Prefix     string
	CatalogTTL time.Duration
	BlogTTL    time.Duration
}

// SeedConfig creates the first SUPER_ADMIN when AdminPassword is set.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

// ClientConfig configures the admin console's API client.
type ClientConfig struct {
	APIURL         string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	CredentialPath string
	LogLevel       string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	env := getEnv("APP_ENV", getEnv("NODE_ENV", "development"))

	// Production keeps the tighter public limit.
	defaultRequests := 500
	if env == "production" {
		defaultRequests = 100
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("PORT", "3001"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:  getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:   getEnv("TLS_KEY_FILE", ""),
			Environment:  env,
			AllowedOrigins: getListEnv("CORS_ORIGINS", []string{
				"http://localhost:3000",
				"https://lexlucglobal.ng",
				"https://www.lexlucglobal.ng",
			}),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "lexluc"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getDurationEnv("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
		JWT: JWTConfig{
			Secret:         getEnvRequired("JWT_SECRET"),
			AccessTokenTTL: getDurationEnv("JWT_EXPIRATION", 7*24*time.Hour),
		},
		Email: EmailConfig{
			Enabled:        getBoolEnv("EMAIL_ENABLED", false),
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromEmail:      getEnv("FROM_EMAIL", "noreply@lexlucglobal.ng"),
			FromName:       getEnv("FROM_NAME", "Lexluc Global"),
			AdminEmail:     getEnv("ADMIN_EMAIL", "admin@lexlucglobal.ng"),
			CompanyName:    getEnv("COMPANY_NAME", "Lexluc Global"),
			SiteURL:        getEnv("SITE_URL", "https://lexlucglobal.ng"),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			ClusterAddrs: getListEnv("REDIS_CLUSTER_ADDRS", nil),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:  getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		RateLimit: RateLimitConfig{
			Requests:  getIntEnv("RATE_LIMIT_REQUESTS", defaultRequests),
			Window:    getDurationEnv("RATE_LIMIT_WINDOW", 15*time.Minute),
			KeyPrefix: getEnv("RATE_LIMIT_KEY_PREFIX", "ratelimit:ip"),
		},
		Storage: StorageConfig{
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			Region:          getEnv("S3_REGION", "us-east-1"),
			Bucket:          getEnv("S3_BUCKET", "lexluc-media"),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			PublicBaseURL:   getEnv("S3_PUBLIC_BASE_URL", ""),
			Folder:          getEnv("S3_FOLDER", "lexluc"),
			UsePathStyle:    getBoolEnv("S3_USE_PATH_STYLE", false),
			MaxUploadBytes:  int64(getIntEnv("UPLOAD_MAX_BYTES", 5*1024*1024)),
		},
		Cache: CacheConfig{
			Prefix:     getEnv("CACHE_PREFIX", "lexluc"),
			CatalogTTL: getDurationEnv("CACHE_CATALOG_TTL", 10*time.Minute),
			BlogTTL:    getDurationEnv("CACHE_BLOG_TTL", 5*time.Minute),
		},
		Seed: SeedConfig{
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@lexlucglobal.ng"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
	}

	// Build database DSN
	cfg.Database.DSN = getEnv("DATABASE_URL", fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	))

	if cfg.Email.Enabled && cfg.Email.SendGridAPIKey == "" {
		return nil, fmt.Errorf("SENDGRID_API_KEY is required when EMAIL_ENABLED is set")
	}

	return cfg, nil
}

// LoadClient reads the admin console settings.
func LoadClient() *ClientConfig {
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &ClientConfig{
		APIURL:         getEnv("API_URL", "http://localhost:3001/api/v1"),
		Timeout:        getDurationEnv("API_TIMEOUT", 15*time.Second),
		MaxRetries:     getIntEnv("API_MAX_RETRIES", 3),
		RetryDelay:     getDurationEnv("API_RETRY_DELAY", time.Second),
		CredentialPath: getEnv("SITECTL_CREDENTIALS", filepath.Join(home, ".config", "sitectl", "credentials.db")),
		LogLevel:       getEnv("LOG_LEVEL", "warn"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
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

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getListEnv splits a comma separated value, dropping empty items.
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
