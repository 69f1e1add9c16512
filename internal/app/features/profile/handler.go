// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"io"

	"github.com/dalemusser/profilehub/internal/app/store/users"
	"github.com/dalemusser/profilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// userStore is the slice of the user store this feature needs.
// Declared here so tests can substitute a fake, in particular to inject
// a database failure between the image write and the pointer update.
type userStore interface {
	GetProfile(ctx context.Context, filter bson.M) (*models.User, error)
	UpdateProfile(ctx context.Context, filter bson.M, upd userstore.ProfileUpdate) (*models.User, error)
	GetImagePath(ctx context.Context, filter bson.M) (string, error)
	SetImagePath(ctx context.Context, filter bson.M, path *string) error
}

// imageStore writes and removes the stored image files.
type imageStore interface {
	Save(r io.Reader, contentType string) (string, error)
	Remove(relPath string) error
}

// Handler owns the profile read/update handlers and the image
// upload/replace/delete orchestration.
//
// It is constructed once at startup in bootstrap with the shared user
// store, blob store, and logger.
type Handler struct {
	Users     userStore
	Images    imageStore
	Log       *zap.Logger
	MaxUpload int64 // multipart memory/body budget in bytes
}

// NewHandler constructs a profile Handler.
func NewHandler(users userStore, images imageStore, maxUpload int64, logger *zap.Logger) *Handler {
	if maxUpload <= 0 {
		maxUpload = 8 << 20
	}
	return &Handler{
		Users:     users,
		Images:    images,
		Log:       logger,
		MaxUpload: maxUpload,
	}
}

// profileResponse is the client-facing shape of a profile.
type profileResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Firstname    string  `json:"firstname"`
	Lastname     string  `json:"lastname"`
	ProfileImage *string `json:"profileImage"`
}

func toProfileResponse(u *models.User) profileResponse {
	resp := profileResponse{
		Email:     u.Email,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
	}
	if !u.ID.IsZero() {
		resp.ID = u.ID.Hex()
	}
	if u.HasImage() {
		resp.ProfileImage = u.ProfileImage
	}
	return resp
}
