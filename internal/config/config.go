package config

import (
	"os"
)

type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SessionSecret string
	GinMode       string
	Port          string
	StorageURL    string
	StorageKey    string
	StorageBucket string
}

func Load() *Config {
	return &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "orguser"),
		DBPassword:    getEnv("DB_PASSWORD", "orgpassword"),
		DBName:        getEnv("DB_NAME", "org_directory"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		Port:          getEnv("PORT", "8080"),
		// Storage credentials intentionally default to empty strings; the
		// service starts without them and upload requests fail at call time.
		StorageURL:    getEnv("SUPABASE_URL", ""),
		StorageKey:    getEnv("SUPABASE_ANON", ""),
		StorageBucket: getEnv("STORAGE_BUCKET", "profile-images"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
