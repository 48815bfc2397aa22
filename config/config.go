package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

const (
	SourceSalesforce = "salesforce"
	SourceMariaDB    = "mariadb"

	defaultPort             = "8080"
	defaultAPIVersion       = "v60.0"
	defaultRecentWindowDays = 30
)

type Config struct {
	AppEnv       string
	Port         string
	RecordSource string

	SFInstanceURL string
	SFAPIVersion  string
	SFAccessToken string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// JWTSecret is empty when the host platform does not forward signed tokens.
	JWTSecret string

	// RecentWindowDays bounds the "new" sub-counts used for trends.
	RecentWindowDays int
}

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig reads .env (when present) and the process environment once.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		cfg = FromEnv()
	})
	return cfg
}

// FromEnv builds a Config from the current environment without caching it.
func FromEnv() *Config {
	c := &Config{
		AppEnv:           os.Getenv("APP_ENV"),
		Port:             getenv("PORT", defaultPort),
		RecordSource:     getenv("RECORD_SOURCE", SourceSalesforce),
		SFInstanceURL:    os.Getenv("SF_INSTANCE_URL"),
		SFAPIVersion:     getenv("SF_API_VERSION", defaultAPIVersion),
		SFAccessToken:    os.Getenv("SF_ACCESS_TOKEN"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getenv("DB_PORT", "3306"),
		DBName:           os.Getenv("DB_NAME"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		RecentWindowDays: defaultRecentWindowDays,
	}
	if v := os.Getenv("RECENT_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.RecentWindowDays = n
		}
	}
	return c
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
