// Package auth verifies and issues the JWT session cookie.
//
// Verification is fail-closed by construction: VerifyRequest returns
// (*Claims, bool) and every failure mode (no cookie, malformed token,
// bad signature, expired) collapses into the same (nil, false) branch.
// Callers never learn why a token was rejected, and neither do clients.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/profilehub/internal/app/system/respond"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Claims is the decoded identity carried by the session cookie.
// Tokens issued by this service carry both ID and Email; tokens from
// older issuance paths may carry only one, which is why the identity
// resolver falls back from ID to Email.
type Claims struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates session cookies and signs new ones.
type Verifier struct {
	secret       []byte
	cookieName   string
	cookieDomain string
	secure       bool
	ttl          time.Duration
}

// Config holds the settings a Verifier is built from.
type Config struct {
	Secret       string
	CookieName   string        // cookie field holding the token, e.g. "token"
	CookieDomain string        // blank means current host
	Secure       bool          // Secure + SameSite=None cookies (production)
	TTL          time.Duration // lifetime of issued tokens
}

// NewVerifier builds a Verifier. The secret must be non-empty; a short
// secret is tolerated but logged, matching how the session key was
// handled before.
func NewVerifier(cfg Config, logger *zap.Logger) (*Verifier, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is empty; provide ≥32 random chars")
	}
	if len(cfg.Secret) < 32 {
		logger.Warn("jwt secret is short; 32+ chars recommended",
			zap.Int("length", len(cfg.Secret)))
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "token"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	return &Verifier{
		secret:       []byte(cfg.Secret),
		cookieName:   cfg.CookieName,
		cookieDomain: cfg.CookieDomain,
		secure:       cfg.Secure,
		ttl:          cfg.TTL,
	}, nil
}

// VerifyRequest extracts the token cookie and validates it.
// The second return is false whenever no valid identity is present.
func (v *Verifier) VerifyRequest(r *http.Request) (*Claims, bool) {
	c, err := r.Cookie(v.cookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	return v.verify(c.Value)
}

func (v *Verifier) verify(tokenStr string) (*Claims, bool) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, false
	}
	if claims.ID == "" && claims.Email == "" {
		return nil, false
	}
	return claims, true
}

// Sign issues a token for the given identity.
func (v *Verifier) Sign(id, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:    id,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// SetCookie writes the session cookie carrying tok.
//
// In production (secure=true) cookies are Secure + SameSite=None so a
// separately hosted front end can send them cross-site over HTTPS.
// In local dev over http://localhost, Lax keeps browsers accepting them.
func (v *Verifier) SetCookie(w http.ResponseWriter, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     v.cookieName,
		Value:    tok,
		Path:     "/",
		Domain:   v.cookieDomain,
		HttpOnly: true,
		Secure:   v.secure,
		SameSite: v.sameSite(),
		Expires:  time.Now().Add(v.ttl),
	})
}

// ClearCookie expires the session cookie.
func (v *Verifier) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     v.cookieName,
		Value:    "",
		Path:     "/",
		Domain:   v.cookieDomain,
		HttpOnly: true,
		Secure:   v.secure,
		SameSite: v.sameSite(),
		MaxAge:   -1,
	})
}

func (v *Verifier) sameSite() http.SameSite {
	if v.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

type ctxKey string

const claimsKey ctxKey = "authClaims"

// CurrentClaims returns the verified claims injected by LoadTokenUser,
// plus a found flag.
func CurrentClaims(r *http.Request) (*Claims, bool) {
	c, ok := r.Context().Value(claimsKey).(*Claims)
	return c, ok
}

// LoadTokenUser injects verified claims into the request context.
// Requests without a valid token pass through with no claims set.
func (v *Verifier) LoadTokenUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := v.VerifyRequest(r); ok {
			r = withClaims(r, claims)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth ensures verified claims are present in context (set by
// LoadTokenUser) and answers a uniform JSON 401 otherwise.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentClaims(r); !ok {
			respond.Unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithTestClaims injects claims directly for handler tests, bypassing
// cookie verification.
func WithTestClaims(r *http.Request, c *Claims) *http.Request {
	return withClaims(r, c)
}

func withClaims(r *http.Request, c *Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, c))
}
