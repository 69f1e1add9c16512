// internal/app/features/profile/routes.go
package profile

import (
	"github.com/dalemusser/profilehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the profile endpoints on the supplied router.
// All of them require a verified token (loaded by the global
// LoadTokenUser middleware); RequireAuth turns its absence into a
// uniform 401 before any handler runs.
func MountRoutes(r chi.Router, h *Handler) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.Get("/api/user/profile", h.ServeProfile)
		r.Put("/api/user/profile", h.HandleUpdateProfile)
		r.Post("/api/user/profile/image", h.HandleUploadImage)
		r.Delete("/api/user/profile/image", h.HandleDeleteImage)
	})
}
