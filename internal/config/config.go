package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds everything read from the environment at startup.
type Config struct {
	ListenAddr string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDatabase string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	JWTSecret     string
	ReferencesDir string
	ViewsDir      string
}

// Load reads the configuration from environment variables (a .env file is
// loaded automatically if present). Every value has a development default
// except JWT_SECRET, which callers should treat as required in production.
func Load() *Config {
	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":3000"),

		MySQLUser:     getEnv("MYSQL_USER", "root"),
		MySQLPassword: getEnv("MYSQL_PASSWORD", ""),
		MySQLHost:     getEnv("MYSQL_HOST", "localhost"),
		MySQLPort:     getEnv("MYSQL_PORT", "3306"),
		MySQLDatabase: getEnv("MYSQL_DATABASE", "qaprep"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-me"),
		ReferencesDir: getEnv("REFERENCES_DIR", "data/references"),
		ViewsDir:      getEnv("VIEWS_DIR", "web/views"),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
