package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server  ServerConfig
	Scoring ScoringConfig
	OAuth   OAuthConfig
	JWT     JWTConfig
	Notify  NotifyConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// ScoringConfig holds the score weights and band thresholds. Defaults
// match the built-in weights; every value is env-overridable.
type ScoringConfig struct {
	DecisionMade       float64
	AgendaProvided     float64
	FollowUpSent       float64
	CouldBeAsync       float64
	ParticipationRatio float64
	LongMeetingPenalty float64
	LongMeetingMinutes int
	HighBand           float64
	MediumBand         float64
}

// OAuthConfig holds OAuth configuration per calendar provider
type OAuthConfig struct {
	Google  ProviderOAuthConfig
	Outlook ProviderOAuthConfig
}

// ProviderOAuthConfig holds one provider's OAuth client settings
type ProviderOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

// NotifyConfig holds notification channel configuration
type NotifyConfig struct {
	WebhookURL      string
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	EmailFrom       string
	EmailRecipients []string
	SurveyBaseURL   string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Scoring: ScoringConfig{
			DecisionMade:       getEnvAsFloat("SCORE_WEIGHT_DECISION_MADE", 30),
			AgendaProvided:     getEnvAsFloat("SCORE_WEIGHT_AGENDA_PROVIDED", 15),
			FollowUpSent:       getEnvAsFloat("SCORE_WEIGHT_FOLLOW_UP_SENT", 20),
			CouldBeAsync:       getEnvAsFloat("SCORE_WEIGHT_COULD_BE_ASYNC", -25),
			ParticipationRatio: getEnvAsFloat("SCORE_WEIGHT_PARTICIPATION_RATIO", 20),
			LongMeetingPenalty: getEnvAsFloat("SCORE_WEIGHT_LONG_MEETING_PENALTY", -10),
			LongMeetingMinutes: getEnvAsInt("SCORE_LONG_MEETING_MINUTES", 60),
			HighBand:           getEnvAsFloat("SCORE_HIGH_BAND", 75),
			MediumBand:         getEnvAsFloat("SCORE_MEDIUM_BAND", 50),
		},
		OAuth: OAuthConfig{
			Google: ProviderOAuthConfig{
				ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
				ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
				RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/v1/calendar/google/callback"),
			},
			Outlook: ProviderOAuthConfig{
				ClientID:     getEnv("OUTLOOK_CLIENT_ID", ""),
				ClientSecret: getEnv("OUTLOOK_CLIENT_SECRET", ""),
				RedirectURL:  getEnv("OUTLOOK_REDIRECT_URL", "http://localhost:8080/v1/calendar/outlook/callback"),
			},
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-change-in-production"),
			Expiry: getEnvAsDuration("JWT_EXPIRY", "15m"),
		},
		Notify: NotifyConfig{
			WebhookURL:      getEnv("NOTIFY_WEBHOOK_URL", ""),
			SMTPHost:        getEnv("NOTIFY_SMTP_HOST", ""),
			SMTPPort:        getEnvAsInt("NOTIFY_SMTP_PORT", 587),
			SMTPUsername:    getEnv("NOTIFY_SMTP_USERNAME", ""),
			SMTPPassword:    getEnv("NOTIFY_SMTP_PASSWORD", ""),
			EmailFrom:       getEnv("NOTIFY_EMAIL_FROM", "insights@localhost"),
			EmailRecipients: getEnvAsSlice("NOTIFY_EMAIL_RECIPIENTS", nil),
			SurveyBaseURL:   getEnv("NOTIFY_SURVEY_BASE_URL", "http://localhost:8080/v1/feedback/surveys"),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Scoring.HighBand < c.Scoring.MediumBand {
		return fmt.Errorf("SCORE_HIGH_BAND must be >= SCORE_MEDIUM_BAND")
	}
	if c.Scoring.LongMeetingMinutes <= 0 {
		return fmt.Errorf("SCORE_LONG_MEETING_MINUTES must be positive")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
