package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Database DatabaseConfig
	Supabase SupabaseConfig
	JWT      JWTConfig
	Home     HomeConfig
	// StoreBackend selects the events store: "postgres" or "supabase".
	StoreBackend string
	GinMode      string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SupabaseConfig struct {
	URL            string
	AnonKey        string
	ServiceRoleKey string
}

type JWTConfig struct {
	Secret string
	Expiry string
}

// HomeConfig is the fixed reference point distances are measured from.
// Defaults to Chepstow.
type HomeConfig struct {
	Lat float64
	Lng float64
}

func New() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "localevents_db"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Supabase: SupabaseConfig{
			URL:            getEnv("SUPABASE_URL", ""),
			AnonKey:        getEnv("SUPABASE_ANON_KEY", ""),
			ServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
			Expiry: getEnv("JWT_EXPIRY", "24h"),
		},
		Home: HomeConfig{
			Lat: getEnvFloat("HOME_LAT", 51.6419),
			Lng: getEnvFloat("HOME_LNG", -2.6773),
		},
		StoreBackend: getEnv("STORE_BACKEND", "postgres"),
		GinMode:      getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func (c *Config) GetDatabaseURL() string {
	return c.buildDatabaseURL()
}

func (c *Config) buildDatabaseURL() string {
	var sb strings.Builder

	sb.WriteString("postgres://")
	sb.WriteString(c.Database.User)
	if c.Database.Password != "" {
		sb.WriteString(":")
		sb.WriteString(c.Database.Password)
	}
	sb.WriteString("@")
	sb.WriteString(c.Database.Host)
	sb.WriteString(":")
	sb.WriteString(c.Database.Port)
	sb.WriteString("/")
	sb.WriteString(c.Database.DBName)

	if c.Database.SSLMode != "" {
		sb.WriteString("?sslmode=")
		sb.WriteString(c.Database.SSLMode)
	}

	return sb.String()
}

func (c *Config) GetCORSOrigins() []string {
	origins := getEnv("CORS_ORIGINS", "http://localhost:3000")
	return strings.Split(origins, ",")
}
