package userstore

import (
	"context"

	"github.com/dalemusser/sfshr/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fetcher implements auth.UserFetcher to load fresh user data on each request.
type Fetcher struct {
	users *mongo.Collection
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{users: db.Collection("users")}
}

// FetchUser returns nil (and no error) when the id is malformed, the user
// does not exist, or the account is disabled.
func (f *Fetcher) FetchUser(ctx context.Context, userID string) (*auth.SessionUser, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	var u struct {
		ID           primitive.ObjectID `bson:"_id"`
		FullName     string             `bson:"full_name"`
		LoginID      string             `bson:"login_id"`
		Capabilities []string           `bson:"capabilities"`
		Status       string             `bson:"status"`
	}
	proj := options.FindOne().SetProjection(bson.M{
		"_id":          1,
		"full_name":    1,
		"login_id":     1,
		"capabilities": 1,
		"status":       1,
	})
	err = f.users.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if u.Status == StatusDisabled {
		return nil, nil
	}

	return &auth.SessionUser{
		ID:           u.ID.Hex(),
		Name:         u.FullName,
		LoginID:      u.LoginID,
		Capabilities: u.Capabilities,
	}, nil
}
