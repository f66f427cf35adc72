package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/sfshr/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts an active user holding caps. The user has no
// password and cannot sign in through the login form.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, loginID string, caps ...string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		LoginID:      loginID,
		LoginIDCI:    text.Fold(loginID),
		FullName:     fullName,
		Capabilities: caps,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Capabilities == nil {
		user.Capabilities = []string{}
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateEmployee inserts an employee with the given id. userID may be nil.
func (f *Fixtures) CreateEmployee(ctx context.Context, id int64, fullName string, userID *primitive.ObjectID) models.Employee {
	f.t.Helper()

	now := time.Now().UTC()
	hire := now.AddDate(-3, 0, 0).Truncate(24 * time.Hour)
	emp := models.Employee{
		ID:          id,
		UserID:      userID,
		Code:        "E" + time.Now().Format("150405.000000"),
		FullName:    fullName,
		FullNameCI:  text.Fold(fullName),
		Department:  "Operations",
		Position:    "Officer",
		HireDate:    &hire,
		BasicSalary: 8000,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("employees").InsertOne(ctx, emp); err != nil {
		f.t.Fatalf("failed to create test employee: %v", err)
	}
	return emp
}

// CreateShiftSwap inserts a swap with the given id, status and creation time.
func (f *Fixtures) CreateShiftSwap(ctx context.Context, id int64, status string, createdAt time.Time) models.ShiftSwap {
	f.t.Helper()

	sw := models.ShiftSwap{
		ID:                 id,
		RequesterID:        1,
		RequesterName:      "Requester",
		RequesterShiftDate: "2026-11-02",
		TargetID:           2,
		TargetName:         "Target",
		TargetShiftDate:    "2026-11-03",
		Reason:             "test",
		Status:             status,
		CreatedAt:          createdAt.UTC().Truncate(time.Millisecond),
		UpdatedAt:          createdAt.UTC().Truncate(time.Millisecond),
	}

	if _, err := f.db.Collection("shift_swaps").InsertOne(ctx, sw); err != nil {
		f.t.Fatalf("failed to create test shift swap: %v", err)
	}
	return sw
}
