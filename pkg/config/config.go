package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Marketplace MarketplaceConfig
	Media       MediaConfig
	Session     SessionConfig
}

type ServerConfig struct {
	Port string
}

type MarketplaceConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

type MediaConfig struct {
	Backend  string // "local" veya "s3"
	LocalDir string
	S3Bucket string
	S3Region string
}

type SessionConfig struct {
	TTLMinutes int
}

func Load() *Config {
	godotenv.Load() // .env dosyasını yükle

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Marketplace: MarketplaceConfig{
			BaseURL:        getEnv("MARKETPLACE_API_URL", "http://localhost:8080/api"),
			APIKey:         getEnv("MARKETPLACE_API_KEY", ""),
			TimeoutSeconds: getEnvInt("MARKETPLACE_TIMEOUT_SECONDS", 30),
		},
		Media: MediaConfig{
			Backend:  getEnv("MEDIA_BACKEND", "local"),
			LocalDir: getEnv("MEDIA_STAGING_DIR", "./tmp/staging"),
			S3Bucket: getEnv("MEDIA_S3_BUCKET", "listora-staging"),
			S3Region: getEnv("MEDIA_S3_REGION", "eu-central-1"),
		},
		Session: SessionConfig{
			TTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 120),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
