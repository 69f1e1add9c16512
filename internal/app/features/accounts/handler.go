// internal/app/features/accounts/handler.go
package accounts

import (
	"context"

	"github.com/dalemusser/profilehub/internal/domain/models"
	"go.uber.org/zap"
)

// userStore is the slice of the user repository this feature needs.
type userStore interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// Handler owns account registration and the user listing.
type Handler struct {
	Users userStore
	Log   *zap.Logger
}

func NewHandler(users userStore, logger *zap.Logger) *Handler {
	return &Handler{Users: users, Log: logger}
}
