package cmd

import "fmt"

// Config carries the environment configuration of the service. All values
// come from the process environment, loaded from .env in development.
type Config struct {
	AppEnv     string
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Outbound webhook endpoints. Either may be empty, disabling that event.
	OrderReadyWebhookURL string
	ReprintWebhookURL    string

	// Order intake feed: CSV export URL and cron schedule (with seconds).
	OrderFeedURL      string
	OrderFeedSchedule string
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
