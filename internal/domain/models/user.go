// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusActive is the lifecycle tag assigned to every account at creation.
const StatusActive = "ACTIVE"

// User is one document in the "user" collection.
//
// Field names match the collection as deployed (camelCase, singular
// collection name), so existing documents keep decoding. ProfileImage is
// a pointer because the collection stores an explicit null when no image
// is set.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password,omitempty" json:"-"`
	Firstname    string             `bson:"firstname,omitempty" json:"firstname"`
	Lastname     string             `bson:"lastname,omitempty" json:"lastname"`
	Status       string             `bson:"status" json:"status"`
	ProfileImage *string            `bson:"profileImage" json:"profileImage"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// HasImage reports whether the user currently references a stored image.
func (u *User) HasImage() bool {
	return u.ProfileImage != nil && *u.ProfileImage != ""
}
