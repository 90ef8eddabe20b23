package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Redis      RedisConfig
	Onboarding OnboardingConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CatalogTTL    time.Duration
}

type OnboardingConfig struct {
	// photo results below this confidence fall back to the measurement classifier
	PhotoConfidenceThreshold float64
	PointsPerStep            int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	catalogTTL, err := time.ParseDuration(getEnv("REDIS_CATALOG_TTL", "10m"))
	if err != nil {
		return nil, errors.New("invalid redis catalog ttl")
	}

	threshold, err := strconv.ParseFloat(getEnv("ONBOARDING_PHOTO_CONFIDENCE_THRESHOLD", "0.6"), 64)
	if err != nil || threshold < 0 || threshold > 1 {
		return nil, errors.New("invalid onboarding photo confidence threshold")
	}

	pointsPerStep, err := getEnvInt("ONBOARDING_POINTS_PER_STEP", 50)
	if err != nil || pointsPerStep < 0 {
		return nil, errors.New("invalid onboarding points per step")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "AuraSync API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "aurasync"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			CatalogTTL:    catalogTTL,
		},
		Onboarding: OnboardingConfig{
			PhotoConfidenceThreshold: threshold,
			PointsPerStep:            int64(pointsPerStep),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	return strconv.Atoi(val)
}
