package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/profilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user document directly and returns it.
func (f *Fixtures) CreateUser(ctx context.Context, username, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  "$2a$10$fixturefixturefixturefixturefixturefixturefixturefix",
		Firstname: "Test",
		Lastname:  "User",
		Status:    models.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("user").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateUserWithImage inserts a user whose profileImage points at path.
func (f *Fixtures) CreateUserWithImage(ctx context.Context, username, email, path string) models.User {
	f.t.Helper()

	user := f.CreateUser(ctx, username, email)
	user.ProfileImage = &path

	_, err := f.db.Collection("user").UpdateByID(ctx, user.ID,
		map[string]any{"$set": map[string]any{"profileImage": path}})
	if err != nil {
		f.t.Fatalf("failed to set profile image: %v", err)
	}
	return user
}
