package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/profilehub/internal/app/system/normalize"
	"github.com/dalemusser/profilehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the name of the user collection.
const Collection = "user"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

var (
	// ErrDuplicateUsername is returned when the username unique index rejects a write.
	ErrDuplicateUsername = errors.New("a user with this username already exists")
	// ErrDuplicateEmail is returned when the email unique index rejects a write.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)

// classifyDup maps a confirmed duplicate-key error to the field-specific
// sentinel. The 11000 code is the structured signal; the index name in
// the server message only picks which unique index fired.
func classifyDup(err error) error {
	if strings.Contains(err.Error(), "username_1") {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}

// Create inserts a new user after normalizing fields. The caller is
// responsible for hashing the password before it gets here.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Username = normalize.Username(u.Username)
	u.Email = normalize.Email(u.Email)
	u.Firstname = normalize.Name(u.Firstname)
	u.Lastname = normalize.Name(u.Lastname)
	if u.Status == "" {
		u.Status = models.StatusActive
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, classifyDup(err)
		}
		return models.User{}, err
	}
	return u, nil
}

// List returns every user with the password field projected away.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetProfile loads the user matched by filter. Returns
// mongo.ErrNoDocuments if no record matches.
func (s *Store) GetProfile(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ProfileUpdate holds the profile fields a user may change.
type ProfileUpdate struct {
	Email     string
	Firstname string
	Lastname  string
}

// UpdateProfile sets the mutable profile fields and returns the updated
// record. Returns ErrDuplicateEmail when the new email belongs to
// another user, and mongo.ErrNoDocuments when the filter matches no
// record.
func (s *Store) UpdateProfile(ctx context.Context, filter bson.M, upd ProfileUpdate) (*models.User, error) {
	set := bson.M{
		"email":     normalize.Email(upd.Email),
		"firstname": normalize.Name(upd.Firstname),
		"lastname":  normalize.Name(upd.Lastname),
		"updatedAt": time.Now(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err := s.c.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &u, nil
}

// GetImagePath returns the user's current profileImage, "" when the
// field is null, and mongo.ErrNoDocuments when no record matches.
func (s *Store) GetImagePath(ctx context.Context, filter bson.M) (string, error) {
	opts := options.FindOne().SetProjection(bson.M{"profileImage": 1})
	var u models.User
	if err := s.c.FindOne(ctx, filter, opts).Decode(&u); err != nil {
		return "", err
	}
	if u.ProfileImage == nil {
		return "", nil
	}
	return *u.ProfileImage, nil
}

// SetImagePath points profileImage at path, or at an explicit null when
// path is nil. Returns mongo.ErrNoDocuments when the filter matches no
// record. The single-document update is atomic; concurrent uploads for
// the same user resolve to last-write-wins.
func (s *Store) SetImagePath(ctx context.Context, filter bson.M, path *string) error {
	set := bson.M{
		"profileImage": path,
		"updatedAt":    time.Now(),
	}
	res, err := s.c.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
