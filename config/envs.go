package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	MazeStore        string // Backing store for mazes: "memory" or "redis"
	RedisHost        string // Hostname or IP address for Redis
	RedisPort        int    // Port number for Redis
	RedisPassword    string // Password for Redis
	MazeTTLSeconds   int    // How long stored mazes live in Redis
	MazeMaxDimension int    // Upper bound for requested maze dimensions
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		HostIP:           getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:         getEnvIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		MazeStore:        getEnvWithDefault("MAZE_STORE", "memory"),
		MazeTTLSeconds:   getEnvIntWithDefault("MAZE_TTL_SECONDS", 3600),
		MazeMaxDimension: getEnvIntWithDefault("MAZE_MAX_DIMENSION", 101),
	}

	// Redis settings are only required when the Redis store is selected.
	if cfg.MazeStore == "redis" {
		cfg.RedisHost = mustGetEnv("REDIS_HOST")
		cfg.RedisPort = mustGetEnvAsInt("REDIS_PORT")
		cfg.RedisPassword = getEnvWithDefault("REDIS_PASS", "")
	}
	return cfg
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvIntWithDefault retrieves the value of an environment variable as an integer or returns a default value if not set or not parseable.
func getEnvIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [INFO] Environment variable %s must be an integer, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}
