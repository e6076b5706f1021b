package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// RateLimit holds a sliding-window limit for one route group.
type RateLimit struct {
	Window time.Duration
	Max    int
}

// Config holds application configuration values.
type Config struct {
	AppPort        string
	DatabaseURL    string
	JWTSecret      string
	TokenExpires   time.Duration
	AdminTokenTTL  time.Duration
	AdminEmail     string
	AdminPass      string
	EmailUser      string
	EmailPass      string
	SMTPHost       string
	SendGridAPIKey string
	MailFrom       string
	AllowedOrigins []string
	RedisURL       string

	APILimit      RateLimit
	LoginLimit    RateLimit
	OTPLimit      RateLimit
	RegisterLimit RateLimit
	AdminLimit    RateLimit
	ContactLimit  RateLimit
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        getEnv("APP_PORT", "5000"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenExpires:   getEnvDuration("JWT_TTL_HOURS", 24) * time.Hour,
		AdminTokenTTL:  getEnvDuration("ADMIN_TOKEN_TTL_HOURS", 2) * time.Hour,
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		AdminPass:      getEnv("ADMIN_PASS", ""),
		EmailUser:      getEnv("EMAIL_USER", ""),
		EmailPass:      getEnv("EMAIL_PASS", ""),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		MailFrom:       getEnv("MAIL_FROM", "Money Miners <noreply@moneyminers.in>"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		RedisURL:       getEnv("REDIS_URL", ""),

		APILimit:      getRateLimit("API", 15*time.Minute, 200),
		LoginLimit:    getRateLimit("AUTH_LOGIN", 15*time.Minute, 5),
		OTPLimit:      getRateLimit("AUTH_OTP", 5*time.Minute, 3),
		RegisterLimit: getRateLimit("AUTH_REGISTER", time.Hour, 10),
		AdminLimit:    getRateLimit("ADMIN_LOGIN", 15*time.Minute, 3),
		ContactLimit:  getRateLimit("CONTACT", 10*time.Minute, 3),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback int) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return time.Duration(parsed)
		}
	}
	return time.Duration(fallback)
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getRateLimit reads RATE_LIMIT_<name>_WINDOW (seconds) and
// RATE_LIMIT_<name>_MAX overrides for one route group.
func getRateLimit(name string, window time.Duration, max int) RateLimit {
	if seconds := getEnvInt("RATE_LIMIT_"+name+"_WINDOW", 0); seconds > 0 {
		window = time.Duration(seconds) * time.Second
	}
	return RateLimit{
		Window: window,
		Max:    getEnvInt("RATE_LIMIT_"+name+"_MAX", max),
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
