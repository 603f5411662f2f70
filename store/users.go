package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bowya123/swiggybackend/auth"
	"github.com/Bowya123/swiggybackend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDuplicateUsername is returned when registering a name that is
	// already taken; the unique index on users.username is the arbiter.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials is returned both for an unknown username and a
	// wrong password, so responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserStore persists username/password-hash pairs.
type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(database *mongo.Database) *UserStore {
	return &UserStore{coll: database.Collection("users")}
}

// Register hashes the password and inserts the user. The plaintext is never
// persisted.
func (s *UserStore) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{Username: username, PasswordHash: hash}
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return &user, nil
}

// Verify looks the user up and checks the password against the stored hash.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *UserStore) Verify(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
