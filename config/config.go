package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	SupportEmail string

	// Object storage (MinIO)
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// Bulletin scraping
	BulletinSourceURLs []string
	ScrapeInterval     time.Duration

	// Reminder job
	ReminderInterval time.Duration
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	scrapeHours, _ := strconv.Atoi(getEnv("SCRAPE_INTERVAL_HOURS", "24"))
	reminderHours, _ := strconv.Atoi(getEnv("REMINDER_INTERVAL_HOURS", "24"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/rideready?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@rideready.app"),
		FromName:     getEnv("FROM_NAME", "RideReady"),
		SupportEmail: getEnv("SUPPORT_EMAIL", "support@rideready.app"),

		// Object storage
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		MinioBucket:    getEnv("MINIO_BUCKET", "ride-documents"),

		// The two bulletin sources are fixed in production; overridable for testing.
		BulletinSourceURLs: strings.Split(getEnv("BULLETIN_SOURCE_URLS",
			"https://www.hse.gov.uk/entertainment/fairgrounds/safety-alerts.htm,https://www.pwsfairs.org/technical-bulletins"), ","),
		ScrapeInterval: time.Duration(scrapeHours) * time.Hour,

		ReminderInterval: time.Duration(reminderHours) * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
