package identity_test

import (
	"testing"

	"github.com/dalemusser/profilehub/internal/app/system/auth"
	"github.com/dalemusser/profilehub/internal/app/system/identity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilter_PrefersValidObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	claims := &auth.Claims{ID: oid.Hex(), Email: "user@example.com"}

	filter := identity.Filter(claims)
	if filter == nil {
		t.Fatal("expected a filter")
	}
	got, ok := filter["_id"].(primitive.ObjectID)
	if !ok {
		t.Fatalf("expected _id filter, got %v", filter)
	}
	if got != oid {
		t.Errorf("_id: got %v, want %v", got, oid)
	}
	if _, hasEmail := filter["email"]; hasEmail {
		t.Error("filter should not also match on email")
	}
}

func TestFilter_FallsBackToEmail(t *testing.T) {
	tests := []struct {
		name   string
		claims *auth.Claims
	}{
		{"no id", &auth.Claims{Email: "User@Example.Com"}},
		{"malformed id", &auth.Claims{ID: "not-an-object-id", Email: "User@Example.Com"}},
		{"short hex id", &auth.Claims{ID: "abc123", Email: "User@Example.Com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := identity.Filter(tt.claims)
			if filter == nil {
				t.Fatal("expected a filter")
			}
			if got := filter["email"]; got != "user@example.com" {
				t.Errorf("email: got %v, want normalized address", got)
			}
		})
	}
}

func TestFilter_NoUsableIdentity(t *testing.T) {
	tests := []struct {
		name   string
		claims *auth.Claims
	}{
		{"nil claims", nil},
		{"empty claims", &auth.Claims{}},
		{"bad id no email", &auth.Claims{ID: "zzz"}},
		{"whitespace email", &auth.Claims{Email: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if filter := identity.Filter(tt.claims); filter != nil {
				t.Errorf("expected nil filter, got %v", filter)
			}
		})
	}
}
