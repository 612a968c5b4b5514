package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	DBMaxConns    int32
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Actor identity
	JWTSecret string
	JWTIssuer string
	// ServiceAPIKeys maps integration keys to the actor they act as.
	ServiceAPIKeys map[string]string

	// Reference-data cache. An empty RedisURL disables caching.
	RedisURL          string
	ReferenceCacheTTL time.Duration

	// Step documents are written below this directory.
	AttachmentRoot string

	// Workflow behaviour
	EnforceEligibility  bool
	CollaboratorTimeout time.Duration

	// HTTP surface
	RateLimit          string // ulule/limiter format, e.g. "300-M"
	CORSAllowedOrigins []string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Actual environment variables take precedence over .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "travel-desk")
	v.SetDefault("SERVICE_API_KEYS", "")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REFERENCE_CACHE_TTL", "5m")
	v.SetDefault("ATTACHMENT_ROOT", "./data/attachments")
	v.SetDefault("ENFORCE_ELIGIBILITY", false)
	v.SetDefault("COLLABORATOR_TIMEOUT", "3s")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		DBMaxConns:         v.GetInt32("DB_MAX_CONNS"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		RedisURL:           v.GetString("REDIS_URL"),
		AttachmentRoot:     v.GetString("ATTACHMENT_ROOT"),
		EnforceEligibility: v.GetBool("ENFORCE_ELIGIBILITY"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		PosthogAPIKey:      v.GetString("POSTHOG_API_KEY"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.ReferenceCacheTTL = durationOrDefault(v.GetString("REFERENCE_CACHE_TTL"), 5*time.Minute, "REFERENCE_CACHE_TTL")
	cfg.CollaboratorTimeout = durationOrDefault(v.GetString("COLLABORATOR_TIMEOUT"), 3*time.Second, "COLLABORATOR_TIMEOUT")

	cfg.ServiceAPIKeys = parseServiceKeys(v.GetString("SERVICE_API_KEYS"))

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func durationOrDefault(raw string, fallback time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

// parseServiceKeys reads "key:actor,key2:actor2". Malformed pairs are skipped.
func parseServiceKeys(raw string) map[string]string {
	keys := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, actor, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || key == "" || actor == "" {
			if strings.TrimSpace(pair) != "" {
				log.Println("Warning: ignoring malformed SERVICE_API_KEYS entry.")
			}
			continue
		}
		keys[key] = actor
	}
	return keys
}
