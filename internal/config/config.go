package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration
type Config struct {
	AppPort      string // Application port
	MongoURI     string // MongoDB connection URI
	MongoDB      string // MongoDB database name
	RedisAddr    string // Redis server address
	RedisPass    string // Redis password
	RedisDB      int    // Redis database number
	BcryptCost   int    // bcrypt work factor for password hashing
	TemplateGlob string // Glob pattern for HTML templates
	SeedDemo     bool   // Seed the demo player and its sample history at startup
	IsProd       bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	bcryptCost, _ := strconv.Atoi(os.Getenv("BCRYPT_COST"))
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Config{
		AppPort:      getenv("APP_PORT", "8080"),
		MongoURI:     getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getenv("MONGO_DB", "casino_db"),
		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    os.Getenv("REDIS_PASS"),
		RedisDB:      redisDB,
		BcryptCost:   bcryptCost,
		TemplateGlob: getenv("TEMPLATE_GLOB", "templates/*.html"),
		SeedDemo:     os.Getenv("SEED_DEMO") == "true",
		IsProd:       os.Getenv("IS_PROD") == "true",
	}
}

// getenv returns the environment variable value or a fallback when unset
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
