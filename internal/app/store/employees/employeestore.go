package employeestore

import (
	"context"
	"errors"
	"time"

	counterstore "github.com/dalemusser/sfshr/internal/app/store/counters"
	"github.com/dalemusser/sfshr/internal/app/system/normalize"
	"github.com/dalemusser/sfshr/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sequence = "employees"

var (
	ErrNotFound      = errors.New("employee not found")
	ErrDuplicateCode = errors.New("an employee with this code already exists")
)

type Store struct {
	c   *mongo.Collection
	ids *counterstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("employees"), ids: counterstore.New(db)}
}

// Create assigns the next integer id and inserts e.
func (s *Store) Create(ctx context.Context, e models.Employee) (models.Employee, error) {
	id, err := s.ids.Next(ctx, sequence)
	if err != nil {
		return models.Employee{}, err
	}
	now := time.Now().UTC()
	e.ID = id
	e.FullName = normalize.Name(e.FullName)
	e.FullNameCI = text.Fold(e.FullName)
	if e.Status == "" {
		e.Status = "active"
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Employee{}, ErrDuplicateCode
		}
		return models.Employee{}, err
	}
	return e, nil
}

// GetByID loads an employee. Returns ErrNotFound if absent.
func (s *Store) GetByID(ctx context.Context, id int64) (models.Employee, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// GetByUserID loads the employee linked to a login. Returns ErrNotFound if
// the user has no employee record.
func (s *Store) GetByUserID(ctx context.Context, userID primitive.ObjectID) (models.Employee, error) {
	return s.findOne(ctx, bson.M{"user_id": userID})
}

// List returns employees ordered by name.
func (s *Store) List(ctx context.Context) ([]models.Employee, error) {
	opts := options.Find().SetSort(bson.D{{Key: "full_name_ci", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Employee{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) findOne(ctx context.Context, filter bson.M) (models.Employee, error) {
	var e models.Employee
	err := s.c.FindOne(ctx, filter).Decode(&e)
	if err == mongo.ErrNoDocuments {
		return models.Employee{}, ErrNotFound
	}
	if err != nil {
		return models.Employee{}, err
	}
	return e, nil
}
