package config

import (
	"os"
	"path/filepath"
	"strconv"

	"ccm-mcp/internal/market"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Sources             market.Sources
	DataPath            string
	EnableMermaidCharts bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	if err == nil {
		envPath := filepath.Join(filepath.Dir(exePath), ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve Data Paths. Input files default to the working directory.
	dataPath := getEnv("DATA_PATH", ".")

	cfg := &AppConfig{
		Sources: market.Sources{
			ProjectsPath:   resolvePath(dataPath, getEnv("PROJECTS_FILE", "projects.csv")),
			CreditsPath:    resolvePath(dataPath, getEnv("CREDITS_FILE", "credits.csv")),
			BoundariesPath: resolvePath(dataPath, getEnv("GEOJSON_FILE", "countries.geo.json")),
		},
		DataPath:            dataPath,
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
	}

	return cfg, nil
}

// resolvePath joins relative file names onto the data path; absolute overrides
// are taken as-is.
func resolvePath(dataPath, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dataPath, file)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
