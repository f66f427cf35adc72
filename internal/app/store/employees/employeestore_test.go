package employeestore_test

import (
	"errors"
	"testing"

	employeestore "github.com/dalemusser/sfshr/internal/app/store/employees"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"github.com/dalemusser/sfshr/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	created, err := store.Create(ctx, models.Employee{
		UserID:     &userID,
		Code:       "EMP-001",
		FullName:   "  Khalid  Omar ",
		Department: "Operations",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("first employee id = %d, want 1", created.ID)
	}
	if created.FullName != "Khalid Omar" || created.FullNameCI == "" {
		t.Errorf("name fields = %q / %q", created.FullName, created.FullNameCI)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Code != "EMP-001" {
		t.Errorf("Code = %q", got.Code)
	}

	byUser, err := store.GetByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUserID failed: %v", err)
	}
	if byUser.ID != created.ID {
		t.Errorf("GetByUserID returned %d", byUser.ID)
	}
}

func TestStore_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, 404); !errors.Is(err, employeestore.ErrNotFound) {
		t.Errorf("GetByID: got %v, want ErrNotFound", err)
	}
	if _, err := store.GetByUserID(ctx, primitive.NewObjectID()); !errors.Is(err, employeestore.ErrNotFound) {
		t.Errorf("GetByUserID: got %v, want ErrNotFound", err)
	}
}

func TestStore_List_SortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := employeestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("empty List = %v, want non-nil empty slice", list)
	}

	for _, n := range []string{"Zaid", "amal", "Basma"} {
		if _, err := store.Create(ctx, models.Employee{FullName: n}); err != nil {
			t.Fatalf("Create %s: %v", n, err)
		}
	}
	list, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 || list[0].FullName != "amal" || list[2].FullName != "Zaid" {
		t.Errorf("List order = %v", list)
	}
}
