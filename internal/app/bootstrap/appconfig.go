// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and request timeouts. AppConfig
// is everything specific to this service: the Mongo connection, the
// token cookie, the image directory.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Token configuration
	JWTSecret    string        // Secret for signing tokens (must be strong in production)
	JWTTTL       time.Duration // Lifetime of issued tokens
	CookieName   string        // Cookie field holding the token (default: token)
	CookieDomain string        // Cookie domain (blank means current host)

	// CORS configuration
	CORSOrigin string // Allowed browser origin (the frontend's URL)

	// Image storage configuration
	UploadDir       string // Directory holding stored profile images
	UploadURLPrefix string // URL prefix the images are served under
	MaxUploadBytes  int64  // Upper bound for one image upload
}
