package authn_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/profilehub/internal/app/features/authn"
	"github.com/dalemusser/profilehub/internal/app/system/auth"
	"github.com/dalemusser/profilehub/internal/domain/models"
	"github.com/dalemusser/profilehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers struct {
	user *models.User
	err  error
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.user == nil || f.user.Email != email {
		return nil, mongo.ErrNoDocuments
	}
	return f.user, nil
}

func newVerifier(t *testing.T) *auth.Verifier {
	t.Helper()
	v, err := auth.NewVerifier(auth.Config{
		Secret: "0123456789abcdef0123456789abcdef",
		TTL:    time.Hour,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	return v
}

func accountWithPassword(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &models.User{
		ID:        primitive.NewObjectID(),
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Password:  string(hash),
		Firstname: "John",
		Lastname:  "Doe",
		Status:    models.StatusActive,
	}
}

func tokenCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestHandleLogin(t *testing.T) {
	u := accountWithPassword(t, "hunter22")
	v := newVerifier(t)
	h := authn.NewHandler(&fakeUsers{user: u}, v, zap.NewNop())

	req := testutil.NewJSONRequest("POST", "/api/auth/login",
		`{"email":"jdoe@example.com","password":"hunter22"}`)
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d (%s)", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	if body["id"] != u.ID.Hex() || body["email"] != "jdoe@example.com" {
		t.Errorf("summary: got %v", body)
	}
	if _, leaked := body["password"]; leaked {
		t.Error("password must never appear in the login response")
	}

	c := tokenCookie(rec)
	if c == nil {
		t.Fatal("no token cookie set")
	}
	if !c.HttpOnly {
		t.Error("token cookie must be HttpOnly")
	}

	// The cookie round-trips through the middleware path.
	next := httptest.NewRequest("GET", "/api/user/profile", nil)
	next.AddCookie(c)
	claims, ok := v.VerifyRequest(next)
	if !ok {
		t.Fatal("freshly issued cookie does not verify")
	}
	if claims.ID != u.ID.Hex() || claims.Email != u.Email {
		t.Errorf("claims: got %+v", claims)
	}
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	u := accountWithPassword(t, "hunter22")

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"jdoe@example.com","password":"wrong"}`},
		{"unknown email", `{"email":"nobody@example.com","password":"hunter22"}`},
	}

	var responses []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := authn.NewHandler(&fakeUsers{user: u}, newVerifier(t), zap.NewNop())

			rec := httptest.NewRecorder()
			h.HandleLogin(rec, testutil.NewJSONRequest("POST", "/api/auth/login", tt.body))

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401", rec.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("body: %v", err)
			}
			if body["message"] != "Invalid email or password" {
				t.Errorf("message: got %v", body["message"])
			}
			if tokenCookie(rec) != nil {
				t.Error("failed login must not set a cookie")
			}
			responses = append(responses, rec.Body.String())
		})
	}

	// Identical bodies either way: no account probing.
	if len(responses) == 2 && responses[0] != responses[1] {
		t.Errorf("failure responses differ: %q vs %q", responses[0], responses[1])
	}
}

func TestHandleLogin_Validation(t *testing.T) {
	h := authn.NewHandler(&fakeUsers{}, newVerifier(t), zap.NewNop())

	for _, body := range []string{"{broken", `{"email":"a@b.co"}`, `{"password":"x"}`} {
		rec := httptest.NewRecorder()
		h.HandleLogin(rec, testutil.NewJSONRequest("POST", "/api/auth/login", body))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: got %d, want 400", body, rec.Code)
		}
	}
}

func TestHandleLogin_StoreError(t *testing.T) {
	h := authn.NewHandler(&fakeUsers{err: errors.New("server selection timeout")}, newVerifier(t), zap.NewNop())

	req := testutil.NewJSONRequest("POST", "/api/auth/login",
		`{"email":"jdoe@example.com","password":"hunter22"}`)
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
}

func TestHandleLogout(t *testing.T) {
	h := authn.NewHandler(&fakeUsers{}, newVerifier(t), zap.NewNop())

	rec := httptest.NewRecorder()
	h.HandleLogout(rec, httptest.NewRequest("POST", "/api/auth/logout", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	c := tokenCookie(rec)
	if c == nil {
		t.Fatal("logout must rewrite the token cookie")
	}
	if c.Value != "" || c.MaxAge >= 0 {
		t.Errorf("cookie not expired: value=%q maxAge=%d", c.Value, c.MaxAge)
	}
}
