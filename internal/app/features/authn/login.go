// internal/app/features/authn/login.go
package authn

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/profilehub/internal/app/system/respond"
	"github.com/dalemusser/profilehub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// dummyHash is compared against when the email is unknown, so that
// path costs a bcrypt verification too and response timing does not
// reveal which addresses have accounts.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// HandleLogin checks credentials and sets the token cookie.
// POST /api/auth/login
//
// An unknown email and a wrong password produce the same response so
// the endpoint cannot be used to probe which addresses have accounts.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			respond.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.Log.Error("login lookup failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		respond.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	tok, err := h.Verifier.Sign(u.ID.Hex(), u.Email)
	if err != nil {
		h.Log.Error("token signing failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}
	h.Verifier.SetCookie(w, tok)

	respond.JSON(w, http.StatusOK, map[string]any{
		"id":           u.ID.Hex(),
		"email":        u.Email,
		"firstname":    u.Firstname,
		"lastname":     u.Lastname,
		"profileImage": u.ProfileImage,
	})
}

// HandleLogout clears the token cookie.
// POST /api/auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Verifier.ClearCookie(w)
	respond.JSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
