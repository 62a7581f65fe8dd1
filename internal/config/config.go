package config

import (
	"errors"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultDBName is used when DB_NAME is not set.
const DefaultDBName = "trello_clone_se"

// ErrDatabaseURLMissing is returned when the API is started without DATABASE_URL.
var ErrDatabaseURLMissing = errors.New("DATABASE_URL is required")

type Config struct {
	DatabaseURL        string
	DBName             string
	AutoMigrate        bool
	ServerPort         string
	LogLevel           string
	LogJSON            bool
	CORSAllowedOrigins []string

	// Web frontend
	APIBaseURL string
	WebPort    string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	return &Config{
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DBName:             getEnv("DB_NAME", DefaultDBName),
		AutoMigrate:        getBool("AUTO_MIGRATE", true),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogJSON:            getBool("LOG_JSON", false),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		APIBaseURL:         strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080"), "/"),
		WebPort:            getEnv("WEB_PORT", "3000"),
	}
}

// DSN returns DatabaseURL with its database path replaced by DBName.
func (c *Config) DSN() (string, error) {
	if c.DatabaseURL == "" {
		return "", ErrDatabaseURLMissing
	}
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return "", err
	}
	if c.DBName != "" {
		u.Path = "/" + c.DBName
	}
	return u.String(), nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultVal
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
