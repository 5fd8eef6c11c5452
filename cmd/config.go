package cmd

import "time"

// Config carries the runtime settings of the service, loaded from the
// environment by the entrypoint.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// PurgeRetention is how long soft-deleted orders are kept before the
	// purge job removes them permanently.
	PurgeRetention time.Duration
	// PurgeSchedule is the six-field cron expression of the purge job.
	PurgeSchedule string
}
