// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//
// The service runs without a document store when MongoURI is empty: the
// liveness and diagnostics routes still answer, and every data route
// answers 503.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string; empty disables the store
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in the pool
	MongoMinPoolSize uint64 // Minimum connections kept open

	// AdminEmail is promoted to (or created as) an admin member at startup.
	AdminEmail string

	// DefaultPlan is the plan label stored on newly registered members.
	DefaultPlan string

	// MessagesDefaultLimit caps a message listing that gives no limit.
	MessagesDefaultLimit int64

	// Optional write throttling per client IP; a zero limit (the default)
	// disables it.
	WriteRateLimit  int
	WriteRateWindow time.Duration

	// TrustProxy rewrites RemoteAddr from forwarding headers. Enable only
	// behind a proxy that sets them.
	TrustProxy bool

	// Handler timeouts; zero keeps the package defaults.
	TimeoutPing   time.Duration
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
