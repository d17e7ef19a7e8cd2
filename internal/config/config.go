package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	TablePrefix string

	// Record store
	DatabaseDriver string // "postgres" or "sqlite"
	DatabaseURL    string
	SQLitePath     string
	AutoMigrate    bool

	// Admin authentication
	AdminJWKSURL string

	// Listing and URL construction
	BasePath        string
	DefaultPageRows int
	AdminPageRows   int
	ImagePageRows   int
	FolderMaxDepth  int

	// Logging
	LogDir      string // Empty disables the file sink
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     env,
		CORSOrigins:     getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:     getTablePrefix(env),
		DatabaseDriver:  getEnv("DATABASE_DRIVER", "postgres"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		SQLitePath:      getEnv("SQLITE_PATH", "cms.db"),
		AutoMigrate:     getEnv("AUTO_MIGRATE", getDefaultAutoMigrate(env)) == "true",
		AdminJWKSURL:    getEnv("ADMIN_JWKS_URL", ""),
		BasePath:        getEnv("BASE_PATH", ""),
		DefaultPageRows: getEnvInt("DEFAULT_PAGE_ROWS", DefaultPageRows),
		AdminPageRows:   getEnvInt("ADMIN_PAGE_ROWS", DefaultAdminPageRows),
		ImagePageRows:   getEnvInt("IMAGE_PAGE_ROWS", DefaultImagePageRows),
		FolderMaxDepth:  getEnvInt("FOLDER_MAX_DEPTH", DefaultFolderMaxDepth),
		LogDir:          getEnv("LOG_DIR", ""),
		LogMaxFiles:     getEnvInt("LOG_MAX_FILES", 10),
	}
}

// getDefaultAutoMigrate creates tables on startup everywhere except prod
func getDefaultAutoMigrate(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
