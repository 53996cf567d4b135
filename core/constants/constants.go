package constants

import "time"

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Cache settings
const (
	ServiceCacheTTL = 5 * time.Minute
)

// Worker settings
const (
	// ReservationExpirySweepSpec is the asynq cron spec for the pending
	// reservation sweep
	ReservationExpirySweepSpec = "@every 5m"
)
