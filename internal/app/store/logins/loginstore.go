// internal/app/store/logins/loginstore.go
package loginstore

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/sfshr/internal/app/system/ratelimit"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProviderPassword marks a sign-in through the login form.
const ProviderPassword = "password"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("login_records")}
}

// Record stores a successful sign-in for userID, taking the client address
// and user agent from r.
func (s *Store) Record(ctx context.Context, r *http.Request, userID primitive.ObjectID, provider string) error {
	rec := models.LoginRecord{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Provider:  provider,
	}
	_, err := s.c.InsertOne(ctx, rec)
	return err
}

// Recent returns the latest sign-ins of userID, newest first.
func (s *Store) Recent(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.LoginRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.LoginRecord{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
