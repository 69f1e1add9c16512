// internal/app/features/authn/routes.go
package authn

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the authentication endpoints on the supplied
// router. Both are open by nature.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/api/auth/login", h.HandleLogin)
	r.Post("/api/auth/logout", h.HandleLogout)
}
