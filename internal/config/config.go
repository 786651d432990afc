// Package config loads process-wide settings once at startup. The resulting
// Config is passed explicitly to the service wiring; nothing reads the
// environment after Load returns.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/light-bringer/estate-service/internal/pkg/media"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds application configuration.
type Config struct {
	Env       string
	HTTPPort  string
	GRPCPort  string
	SpannerDB string

	Auth   AuthConfig
	Redis  RedisConfig
	Media  media.S3Config
	Upload UploadConfig

	CORSOrigins []string
}

// AuthConfig configures token issuance and the auth cookie.
type AuthConfig struct {
	JWTSecret    string
	TokenTTL     time.Duration
	CookieName   string
	CookieSecure bool
	BcryptCost   int
}

// RedisConfig configures the optional search cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// UploadConfig bounds image uploads.
type UploadConfig struct {
	Folder   string
	MaxFiles int
	MaxBytes int64
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// MediaEnabled reports whether a media bucket is configured.
func (c *Config) MediaEnabled() bool {
	return c.Media.Bucket != ""
}

// Load reads an optional .env file, then the environment, applying defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:       getEnv("APP_ENV", EnvDevelopment),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		GRPCPort:  getEnv("GRPC_PORT", "9090"),
		SpannerDB: getEnv("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/estate-db"),
		Auth: AuthConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			TokenTTL:     getEnvDuration("JWT_EXPIRY", 7*24*time.Hour),
			CookieName:   getEnv("COOKIE_NAME", "token"),
			CookieSecure: getEnvBool("COOKIE_SECURE", false),
			BcryptCost:   getEnvInt("BCRYPT_COST", 0),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("CACHE_TTL", time.Minute),
		},
		Media: media.S3Config{
			Bucket:          os.Getenv("MEDIA_BUCKET"),
			Region:          getEnv("MEDIA_REGION", "ap-south-1"),
			Endpoint:        os.Getenv("MEDIA_ENDPOINT"),
			AccessKeyID:     os.Getenv("MEDIA_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("MEDIA_SECRET_ACCESS_KEY"),
			PublicBaseURL:   os.Getenv("MEDIA_PUBLIC_BASE_URL"),
		},
		Upload: UploadConfig{
			Folder:   getEnv("MEDIA_FOLDER", "estate/properties"),
			MaxFiles: getEnvInt("UPLOAD_MAX_FILES", 10),
			MaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		},
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Auth.JWTSecret == "" {
		if !c.IsDevelopment() {
			return errors.New("JWT_SECRET is required outside development")
		}
		c.Auth.JWTSecret = "dev-only-secret"
	}
	if c.Upload.MaxFiles < 1 {
		return errors.New("UPLOAD_MAX_FILES must be at least 1")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
