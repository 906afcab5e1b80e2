// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"      // For reading environment variables
	"strconv" // For parsing numeric/boolean env vars

	"github.com/joho/godotenv"   // .env file loading
	"golang.org/x/crypto/bcrypt" // For the default hashing cost
)

type Config struct { // Config struct holds all configuration values
	Port        string // HTTP port the server listens on
	DBPath      string // Path to the SQLite database file (dev/test default)
	DatabaseURL string // Postgres connection URL (takes precedence over DBPath)
	JWTSecret   string // Secret key for JWT authentication
	BcryptCost  int    // Cost factor for password hashing

	CreateAdmin   bool   // Whether to seed a default admin user on startup
	AdminName     string // Name of the seeded admin user
	AdminEmail    string // Email of the seeded admin user
	AdminPassword string // Password of the seeded admin user

	SeedDemoData bool // Whether to seed demo pollution readings on startup

	MQTTBroker string // Address of the MQTT broker (empty = ingest disabled)
	MQTTTopic  string // Topic sensor readings are published on
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Load .env if present; real env vars win over file values

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "pollution.db"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", "supersecret"),
		BcryptCost:  getEnvInt("BCRYPT_SALT_ROUNDS", bcrypt.DefaultCost),

		CreateAdmin:   getEnvBool("CREATE_ADMIN", false),
		AdminName:     getEnv("ADMIN_NAME", "Admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		SeedDemoData: getEnvBool("SEED_DEMO_DATA", false),

		MQTTBroker: getEnv("MQTT_BROKER", ""),
		MQTTTopic:  getEnv("MQTT_TOPIC", "pollution/readings"),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

func getEnvInt(key string, fallback int) int { // Helper to get an integer env var
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool { // Helper to get a boolean env var
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
