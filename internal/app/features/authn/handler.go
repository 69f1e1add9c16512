// internal/app/features/authn/handler.go
package authn

import (
	"context"

	"github.com/dalemusser/profilehub/internal/app/system/auth"
	"github.com/dalemusser/profilehub/internal/domain/models"
	"go.uber.org/zap"
)

// userStore is the slice of the user repository this feature needs.
type userStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Handler owns login and logout. It holds the verifier so the cookie
// it sets is the same one the middleware later reads.
type Handler struct {
	Users    userStore
	Verifier *auth.Verifier
	Log      *zap.Logger
}

func NewHandler(users userStore, verifier *auth.Verifier, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Verifier: verifier, Log: logger}
}
