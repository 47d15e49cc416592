package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "roomdesk"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort = "8080"

	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Business rules for the booking engine. The timezone is process-wide
	// configuration: every civil time on the wire is interpreted in it.
	DefaultBusinessTimeZone   = "Africa/Johannesburg"
	DefaultBusinessOpenHour   = 9
	DefaultBusinessCloseHour  = 17
	DefaultMinBookingDuration = 30 * time.Minute
	DefaultMaxBookingDuration = 4 * time.Hour
	DefaultLockTTL            = 10 * time.Second

	DefaultKafkaTopic = "booking-events"
)
