package shiftswapstore

import (
	"context"
	"time"

	counterstore "github.com/dalemusser/sfshr/internal/app/store/counters"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sequence = "shift_swaps"

type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("shift_swaps"), ids: counterstore.New(db)}
}

// Create assigns the next integer id and inserts sw. A blank status means
// the swap is waiting on the colleague.
func (s *Store) Create(ctx context.Context, sw models.ShiftSwap) (models.ShiftSwap, error) {
	id, err := s.ids.Next(ctx, sequence)
	if err != nil {
		return models.ShiftSwap{}, err
	}
	now := time.Now().UTC()
	sw.ID = id
	if sw.Status == "" {
		sw.Status = models.SwapPending
	}
	sw.CreatedAt = now
	sw.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, sw); err != nil {
		return models.ShiftSwap{}, err
	}
	return sw, nil
}

// managerQueue matches swaps the colleague accepted that await a manager.
var managerQueue = bson.M{"status": models.SwapManagerPending}

// PendingForManagers returns swaps awaiting a manager decision, newest
// first. The result is never nil.
func (s *Store) PendingForManagers(ctx context.Context) ([]models.ShiftSwap, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, managerQueue, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.ShiftSwap{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PendingCount returns how many swaps await a manager decision.
func (s *Store) PendingCount(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, managerQueue)
}
