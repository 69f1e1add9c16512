// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ProfileHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: PROFILEHUB_MONGO_URI, PROFILEHUB_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "profile_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Token configuration
	{Name: "jwt_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Token signing secret (must be strong in production)"},
	{Name: "jwt_ttl", Default: "720h", Desc: "Lifetime of issued tokens (e.g., 720h, 24h)"},
	{Name: "auth_cookie_name", Default: "token", Desc: "Cookie field holding the token"},
	{Name: "auth_cookie_domain", Default: "", Desc: "Token cookie domain (blank means current host)"},

	// CORS configuration
	{Name: "cors_origin", Default: "http://localhost:5173", Desc: "Allowed browser origin(s) for the frontend, comma separated"},

	// Image storage configuration
	{Name: "upload_dir", Default: "./public/profile-images", Desc: "Directory holding stored profile images"},
	{Name: "upload_url_prefix", Default: "/profile-images", Desc: "URL prefix the images are served under"},
	{Name: "max_upload_bytes", Default: 8 << 20, Desc: "Upper bound for one image upload in bytes"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PROFILEHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PROFILEHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret:    appValues.String("jwt_secret"),
		JWTTTL:       appValues.Duration("jwt_ttl", 720*time.Hour),
		CookieName:   appValues.String("auth_cookie_name"),
		CookieDomain: appValues.String("auth_cookie_domain"),

		CORSOrigin: appValues.String("cors_origin"),

		UploadDir:       appValues.String("upload_dir"),
		UploadURLPrefix: appValues.String("upload_url_prefix"),
		MaxUploadBytes:  int64(appValues.Int("max_upload_bytes")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI format is checked early, before attempting to connect,
// so configuration mistakes surface as a clear startup error.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret must be set")
	}
	if coreCfg.Env == "prod" && len(appCfg.JWTSecret) < 32 {
		return fmt.Errorf("jwt_secret must be at least 32 characters in production")
	}

	if appCfg.UploadDir == "" {
		return fmt.Errorf("upload_dir must be set")
	}
	if appCfg.UploadURLPrefix == "" {
		return fmt.Errorf("upload_url_prefix must be set")
	}

	return nil
}
