package config

import (
	"os"
	"strings"
)

// Settings holds all process configuration. It is loaded once in main and
// passed to the components that need it; nothing reads the environment after
// startup.
type Settings struct {
	Auth0Domain       string
	Auth0APIAudience  string
	Auth0Issuer       string
	Auth0Algorithms   []string
	Auth0ClientID     string
	Auth0ClientSecret string

	DatabaseURL string

	SMSBaseURL  string
	SMSAPIKey   string
	SMSSenderID string

	Env  string // "development", "production" or "test"
	Port string
}

func Load() *Settings {
	return &Settings{
		Auth0Domain:       os.Getenv("AUTH0_DOMAIN"),
		Auth0APIAudience:  os.Getenv("AUTH0_API_AUDIENCE"),
		Auth0Issuer:       os.Getenv("AUTH0_ISSUER"),
		Auth0Algorithms:   splitList(getEnvOrDefault("AUTH0_ALGORITHMS", "RS256")),
		Auth0ClientID:     os.Getenv("AUTH0_CLIENT_ID"),
		Auth0ClientSecret: os.Getenv("AUTH0_CLIENT_SECRET"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		SMSBaseURL:  getEnvOrDefault("SMS_BASE_URL", "https://api.infobip.com"),
		SMSAPIKey:   os.Getenv("SMS_API_KEY"),
		SMSSenderID: getEnvOrDefault("SMS_SENDER_ID", "ServiceSMS"),

		Env:  getEnvOrDefault("ENV", "development"),
		Port: getEnvOrDefault("PORT", "8001"),
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

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
