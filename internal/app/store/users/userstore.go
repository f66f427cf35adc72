package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/sfshr/internal/app/system/authutil"
	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/normalize"
	"github.com/dalemusser/sfshr/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// User statuses.
const (
	StatusActive   = "active"
	StatusDisabled = "disabled"
)

var (
	// ErrDuplicateLoginID is returned when the login id is already taken.
	ErrDuplicateLoginID = errors.New("a user with this login id already exists")
	// ErrInvalidCredentials covers unknown login ids, wrong passwords and
	// disabled accounts alike.
	ErrInvalidCredentials = errors.New("invalid login id or password")
	errLoginIDNeeded      = errors.New("login id is required")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// NewUser is the input to Create.
type NewUser struct {
	LoginID      string
	FullName     string
	Password     string
	Capabilities []string
}

// Create validates and inserts a user with a bcrypt password hash.
func (s *Store) Create(ctx context.Context, in NewUser) (models.User, error) {
	loginID := normalize.LoginID(in.LoginID)
	if loginID == "" {
		return models.User{}, errLoginIDNeeded
	}
	if err := authutil.ValidatePassword(in.Password); err != nil {
		return models.User{}, err
	}
	hash, err := authutil.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		LoginID:      loginID,
		LoginIDCI:    loginID,
		FullName:     normalize.Name(in.FullName),
		PasswordHash: hash,
		Capabilities: authz.Normalize(in.Capabilities),
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateLoginID
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByLoginID looks up a user by case-insensitive login id. Returns
// mongo.ErrNoDocuments if not found.
func (s *Store) GetByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"login_id_ci": normalize.LoginID(loginID)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Authenticate returns the active user matching loginID and password.
func (s *Store) Authenticate(ctx context.Context, loginID, password string) (*models.User, error) {
	u, err := s.GetByLoginID(ctx, loginID)
	if err == mongo.ErrNoDocuments {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.Status == StatusDisabled || !authutil.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GrantCapabilities adds caps to the user's capability set.
func (s *Store) GrantCapabilities(ctx context.Context, id primitive.ObjectID, caps ...string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{
		"$addToSet": bson.M{"capabilities": bson.M{"$each": authz.Normalize(caps)}},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// SetStatus changes the user's status.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	return err
}
