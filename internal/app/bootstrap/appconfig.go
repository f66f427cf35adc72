// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging, CORS); everything specific
// to the HR admin service lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: sfshr-session)
	SessionDomain string // Cookie domain (blank means current host)

	// AdminEnabled reports whether this process serves the administrative
	// context (admin menu pages and admin-only modules).
	AdminEnabled bool

	// Bootstrap admin; created or granted manage on startup when set.
	BootstrapAdminLogin    string
	BootstrapAdminPassword string

	// Operation timeouts; zero keeps the built-in default.
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
}
