// Package identity maps verified token claims to a user-record filter.
package identity

import (
	"github.com/dalemusser/profilehub/internal/app/system/auth"
	"github.com/dalemusser/profilehub/internal/app/system/normalize"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter returns the lookup filter for the user record behind the
// claims, or nil when no usable identity field is present.
//
// The id field wins when it is a well-formed ObjectID; otherwise the
// email field is used. Claims from older issuance paths carry only one
// of the two, which is the reason for the fallback. A nil result means
// unauthorized, never "not found"; callers must reject before any
// store call.
func Filter(c *auth.Claims) bson.M {
	if c == nil {
		return nil
	}
	if c.ID != "" {
		if oid, err := primitive.ObjectIDFromHex(c.ID); err == nil {
			return bson.M{"_id": oid}
		}
	}
	if email := normalize.Email(c.Email); email != "" {
		return bson.M{"email": email}
	}
	return nil
}
