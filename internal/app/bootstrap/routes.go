// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	accountsfeature "github.com/dalemusser/profilehub/internal/app/features/accounts"
	authnfeature "github.com/dalemusser/profilehub/internal/app/features/authn"
	healthfeature "github.com/dalemusser/profilehub/internal/app/features/health"
	profilefeature "github.com/dalemusser/profilehub/internal/app/features/profile"
	userstore "github.com/dalemusser/profilehub/internal/app/store/users"
	"github.com/dalemusser/profilehub/internal/app/system/auth"
	"github.com/dalemusser/profilehub/internal/app/system/blobstore"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// ProfileHub builds the token verifier, applies CORS for the separately
// hosted frontend, installs the token-loading middleware, and mounts the
// feature routers: accounts, authentication, profile, and health. Stored
// profile images are served as static files under the upload URL prefix.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	verifier, err := auth.NewVerifier(auth.Config{
		Secret:       appCfg.JWTSecret,
		CookieName:   appCfg.CookieName,
		CookieDomain: appCfg.CookieDomain,
		Secure:       secure,
		TTL:          appCfg.JWTTTL,
	}, logger)
	if err != nil {
		logger.Error("token verifier init failed", zap.Error(err))
		return nil, err
	}

	users := userstore.New(deps.MongoDatabase)
	images := blobstore.New(appCfg.UploadDir, appCfg.UploadURLPrefix)

	r := chi.NewRouter()

	// The frontend runs on its own origin and sends the token cookie
	// cross-site, so credentials must be allowed and the origins pinned.
	origins := strings.Split(appCfg.CORSOrigin, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Requested-With"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	// Finish bare OPTIONS quickly
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	// Global auth middleware: loads verified claims into context when a
	// valid token cookie is present. Requests without one pass through;
	// RequireAuth decides per route.
	r.Use(verifier.LoadTokenUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Stored profile images with pre-compressed file support
	r.Handle(appCfg.UploadURLPrefix+"/*", fileserver.Handler(appCfg.UploadURLPrefix, appCfg.UploadDir))

	// Account registration and listing
	accountsHandler := accountsfeature.NewHandler(users, logger)
	accountsfeature.MountRoutes(r, accountsHandler)

	// Authentication
	authnHandler := authnfeature.NewHandler(users, verifier, logger)
	authnfeature.MountRoutes(r, authnHandler)

	// Profile and profile image management
	profileHandler := profilefeature.NewHandler(users, images, appCfg.MaxUploadBytes, logger)
	profilefeature.MountRoutes(r, profileHandler)

	return r, nil
}
