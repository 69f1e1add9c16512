// internal/app/features/accounts/accounts.go
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/profilehub/internal/app/store/users"
	"github.com/dalemusser/profilehub/internal/app/system/respond"
	"github.com/dalemusser/profilehub/internal/app/system/timeouts"
	"github.com/dalemusser/profilehub/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the existing password hashes were
// generated with, so old and new hashes verify interchangeably.
const bcryptCost = 10

// HandleListUsers returns every account without password hashes.
// GET /api/user
func (h *Handler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Users.List(ctx)
	if err != nil {
		h.Log.Error("user listing failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	if list == nil {
		list = []models.User{}
	}

	respond.JSON(w, http.StatusOK, map[string]any{"users": list})
}

type createUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// HandleCreateUser registers a new account.
// POST /api/user
func (h *Handler) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Missing mandatory data")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		h.Log.Error("password hashing failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Users.Create(ctx, models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	})
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrDuplicateUsername):
			respond.Error(w, http.StatusBadRequest, "Username already in use")
		case errors.Is(err, userstore.ErrDuplicateEmail):
			respond.Error(w, http.StatusBadRequest, "Email already in use")
		default:
			h.Log.Error("user insert failed", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"id": created.ID.Hex()})
}
