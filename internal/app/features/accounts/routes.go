// internal/app/features/accounts/routes.go
package accounts

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the account endpoints on the supplied router.
// Registration and listing are open: the frontend signs people up
// before they have a token.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/api/user", h.HandleListUsers)
	r.Post("/api/user", h.HandleCreateUser)
}
