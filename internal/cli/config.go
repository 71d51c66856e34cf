package cli

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration
type Config struct {
	Output    string
	LogFormat string
	Verbose   bool
	Seed      uint64
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:    getEnvOrDefault("BROADSIDE_OUTPUT", "text"),
		LogFormat: getEnvOrDefault("BROADSIDE_LOG_FORMAT", "text"),
		Verbose:   getEnvOrDefault("BROADSIDE_VERBOSE", "") == "true",
		Seed:      getEnvUint("BROADSIDE_SEED", 0),
	}
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func defaultEnvFile() string {
	return getEnvOrDefault("BROADSIDE_ENV_FILE", ".env")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseUint(val, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}
