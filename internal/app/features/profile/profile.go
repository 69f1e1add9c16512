// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/profilehub/internal/app/store/users"
	"github.com/dalemusser/profilehub/internal/app/system/auth"
	"github.com/dalemusser/profilehub/internal/app/system/identity"
	"github.com/dalemusser/profilehub/internal/app/system/inputval"
	"github.com/dalemusser/profilehub/internal/app/system/normalize"
	"github.com/dalemusser/profilehub/internal/app/system/respond"
	"github.com/dalemusser/profilehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// requestFilter resolves the caller's identity to a store filter.
// A nil filter is indistinguishable from a missing token: both are 401,
// and no store call happens for either.
func requestFilter(r *http.Request) bson.M {
	claims, ok := auth.CurrentClaims(r)
	if !ok {
		return nil
	}
	return identity.Filter(claims)
}

// ServeProfile returns the caller's profile.
// GET /api/user/profile
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	filter := requestFilter(r)
	if filter == nil {
		respond.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetProfile(ctx, filter)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respond.Error(w, http.StatusNotFound, "Profile not found")
			return
		}
		h.Log.Error("profile lookup failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	respond.JSON(w, http.StatusOK, toProfileResponse(u))
}

type updateProfileRequest struct {
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// HandleUpdateProfile updates the caller's mutable profile fields.
// PUT /api/user/profile
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	filter := requestFilter(r)
	if filter == nil {
		respond.Unauthorized(w)
		return
	}

	var body updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := normalize.Email(body.Email)
	firstname := normalize.Name(body.Firstname)
	lastname := normalize.Name(body.Lastname)

	if email == "" || firstname == "" || lastname == "" {
		respond.Error(w, http.StatusBadRequest, "Email, first name and last name are required")
		return
	}
	if !inputval.IsValidEmail(email) {
		respond.Error(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.UpdateProfile(ctx, filter, userstore.ProfileUpdate{
		Email:     email,
		Firstname: firstname,
		Lastname:  lastname,
	})
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrDuplicateEmail):
			respond.Error(w, http.StatusBadRequest, "Email already in use")
		case errors.Is(err, mongo.ErrNoDocuments):
			respond.Error(w, http.StatusNotFound, "Profile not found")
		default:
			h.Log.Error("profile update failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	respond.JSON(w, http.StatusOK, toProfileResponse(u))
}
