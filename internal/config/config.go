package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var (
	envOnce   sync.Once
	envLoaded string
)

// LoadEnv loads environment variables from a .env file in the current or the
// parent directory, once per process. Variables already set are not
// overridden. It returns the file that was loaded, or "" when none was.
func LoadEnv() string {
	envOnce.Do(func() {
		envLoaded = loadEnvFile(".env", filepath.Join("..", ".env"))
	})
	return envLoaded
}

func loadEnvFile(candidates ...string) string {
	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return ""
		}
		return envFile
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
