package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	RedisAddr string
	RedisDB   int

	BranchesFile string

	SessionTTL      time.Duration
	FinalizeTimeout time.Duration
}

const (
	defaultSessionTTL      = 30 * time.Minute
	defaultFinalizeTimeout = 5 * time.Second
	defaultBranchesFile    = "branches.yaml"
)

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisDB:   envInt("REDIS_DB", 0),

		BranchesFile: envDefault("BRANCHES_FILE", defaultBranchesFile),

		SessionTTL:      envDuration("SESSION_TTL", defaultSessionTTL),
		FinalizeTimeout: envDuration("FINALIZE_TIMEOUT", defaultFinalizeTimeout),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
