package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	DBMaxConns         int
	DBMinConns         int
	JWTSecret          string
	TimeZone           string
	GeoIPDBPath        string
	ImageKitPublicKey  string
	ImageKitPrivateKey string
	ImageKitEndpoint   string
	ImageKitUploadURL  string
	ImageKitAPIURL     string
	MediaRoot          string
	MediaBaseURL       string
	StorageTimeout     time.Duration
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
	CORSOrigins        []string
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DBMaxConns:         getEnvInt("DB_MAX_CONNS", 10),
		DBMinConns:         getEnvInt("DB_MIN_CONNS", 1),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		TimeZone:           getEnv("TIME_ZONE", "Africa/Accra"),
		GeoIPDBPath:        os.Getenv("GEOIP_DB_PATH"),
		ImageKitPublicKey:  os.Getenv("IMAGEKIT_PUBLIC_KEY"),
		ImageKitPrivateKey: os.Getenv("IMAGEKIT_PRIVATE_KEY"),
		ImageKitEndpoint:   os.Getenv("IMAGEKIT_URL_ENDPOINT"),
		ImageKitUploadURL:  getEnv("IMAGEKIT_UPLOAD_URL", "https://upload.imagekit.io/api/v1/files/upload"),
		ImageKitAPIURL:     getEnv("IMAGEKIT_API_URL", "https://api.imagekit.io/v1"),
		MediaRoot:          getEnv("MEDIA_ROOT", "media"),
		MediaBaseURL:       getEnv("MEDIA_BASE_URL", "/media"),
		StorageTimeout:     time.Second * time.Duration(getEnvInt("STORAGE_TIMEOUT_SECONDS", 10)),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		CORSOrigins:        splitCSV(getEnv("CORS_ORIGINS", "")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	if !cfg.IsDevelopment() && cfg.ImageKitPrivateKey == "" {
		return nil, fmt.Errorf("IMAGEKIT_PRIVATE_KEY is required outside development")
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs with relaxed local behavior,
// including local filesystem fallback for media uploads.
func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}

// Location resolves the configured time zone. Visitor counting uses it to
// decide where the day boundary falls. Falls back to UTC for unknown zones.
func (c *Config) Location() *time.Location {
	if c == nil || c.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
