package config

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type S3Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	BucketName      string
	// EndpointURL overrides the AWS endpoint for S3-compatible stores
	// (MinIO, R2). Empty means real AWS S3.
	EndpointURL string
}

type Config struct {
	DBURL       string
	Port        string
	Environment string
	// StagingDir is where multipart uploads are spooled before the
	// object-store write. Every staged file is removed when its request
	// finishes, whatever the outcome.
	StagingDir string
	// StoreTimeout bounds each individual database and object-store call.
	StoreTimeout time.Duration
	CorsConfig   cors.Options
	S3           S3Config
}

// Load reads the environment (optionally from an .env file) into a Config.
// The result is built once in main and passed into constructors; nothing
// below main reads the environment directly.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		DBURL:        getEnv("DB_URL", ""),
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENV", "development"),
		StagingDir:   getEnv("STAGING_DIR", "uploads"),
		StoreTimeout: time.Duration(getEnvInt("STORE_TIMEOUT_SECONDS", 30)) * time.Second,
		CorsConfig:   CorsConfig(),
		S3: S3Config{
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			Region:          getEnv("AWS_REGION", "ap-southeast-1"),
			BucketName:      getEnv("S3_BUCKET_NAME", ""),
			EndpointURL:     getEnv("S3_ENDPOINT_URL", ""),
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func CorsConfig() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}
}
