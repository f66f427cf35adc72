package settlementstore

import (
	"context"
	"errors"
	"strings"
	"time"

	counterstore "github.com/dalemusser/sfshr/internal/app/store/counters"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sequence = "settlements"

var ErrNotFound = errors.New("settlement not found")

type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("settlements"), ids: counterstore.New(db)}
}

// NewReference returns a short human-facing reference such as "STL-1A2B3C4D".
func NewReference() string {
	return "STL-" + strings.ToUpper(uuid.New().String()[:8])
}

// Create assigns the next integer id and a reference, then inserts st.
func (s *Store) Create(ctx context.Context, st models.Settlement) (models.Settlement, error) {
	id, err := s.ids.Next(ctx, sequence)
	if err != nil {
		return models.Settlement{}, err
	}
	now := time.Now().UTC()
	st.ID = id
	if st.Reference == "" {
		st.Reference = NewReference()
	}
	if st.Status == "" {
		st.Status = models.SettlementPending
	}
	st.CreatedAt = now
	st.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, st); err != nil {
		return models.Settlement{}, err
	}
	return st, nil
}

// GetByID loads a settlement. Returns ErrNotFound if absent.
func (s *Store) GetByID(ctx context.Context, id int64) (models.Settlement, error) {
	var st models.Settlement
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&st)
	if err == mongo.ErrNoDocuments {
		return models.Settlement{}, ErrNotFound
	}
	if err != nil {
		return models.Settlement{}, err
	}
	return st, nil
}

// ListFilter narrows List. An empty Status matches every settlement.
type ListFilter struct {
	Status string
	Limit  int64
}

// List returns settlements newest first.
func (s *Store) List(ctx context.Context, f ListFilter) ([]models.Settlement, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Settlement{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByStatus returns the number of settlements per status.
func (s *Store) CountByStatus(ctx context.Context) (map[string]int64, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "n": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			N      int64  `bson:"n"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Status] = row.N
	}
	return counts, cur.Err()
}
