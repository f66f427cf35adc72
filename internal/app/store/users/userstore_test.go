package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/dalemusser/sfshr/internal/app/store/users"
	"github.com/dalemusser/sfshr/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, userstore.NewUser{
		LoginID:      " Manager@Example.com ",
		FullName:     "  Noura   Saleh ",
		Password:     "secure123",
		Capabilities: []string{"Manage", "read", "manage"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.LoginID != "manager@example.com" {
		t.Errorf("LoginID = %q, want normalized", created.LoginID)
	}
	if created.FullName != "Noura Saleh" {
		t.Errorf("FullName = %q", created.FullName)
	}
	if created.PasswordHash == "" || created.PasswordHash == "secure123" {
		t.Error("expected a bcrypt password hash")
	}
	if len(created.Capabilities) != 2 {
		t.Errorf("Capabilities = %v, want deduplicated", created.Capabilities)
	}
	if created.Status != userstore.StatusActive {
		t.Errorf("Status = %q", created.Status)
	}
}

func TestStore_Create_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, userstore.NewUser{Password: "secure123"}); err == nil {
		t.Error("expected error for empty login id")
	}
	if _, err := store.Create(ctx, userstore.NewUser{LoginID: "a", Password: "abc"}); err == nil {
		t.Error("expected error for short password")
	}
}

func TestStore_Authenticate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, userstore.NewUser{LoginID: "staff", Password: "secure123"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.Authenticate(ctx, "STAFF", "secure123")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("Authenticate returned %s, want %s", got.ID.Hex(), u.ID.Hex())
	}

	if _, err := store.Authenticate(ctx, "staff", "wrong-password"); !errors.Is(err, userstore.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, err := store.Authenticate(ctx, "nobody", "secure123"); !errors.Is(err, userstore.ErrInvalidCredentials) {
		t.Errorf("unknown login: got %v", err)
	}

	if err := store.SetStatus(ctx, u.ID, userstore.StatusDisabled); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if _, err := store.Authenticate(ctx, "staff", "secure123"); !errors.Is(err, userstore.ErrInvalidCredentials) {
		t.Errorf("disabled user: got %v", err)
	}
}

func TestStore_GrantCapabilities(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, userstore.NewUser{LoginID: "lead", Password: "secure123", Capabilities: []string{"read"}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.GrantCapabilities(ctx, u.ID, "attendance_admin", "read"); err != nil {
		t.Fatalf("GrantCapabilities failed: %v", err)
	}

	got, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.HasCapability("attendance_admin") || len(got.Capabilities) != 2 {
		t.Errorf("Capabilities = %v", got.Capabilities)
	}
}

func TestFetcher_FetchUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fetcher := userstore.NewFetcher(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, userstore.NewUser{LoginID: "mgr", FullName: "Mgr", Password: "secure123", Capabilities: []string{"manage"}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	su, err := fetcher.FetchUser(ctx, u.ID.Hex())
	if err != nil || su == nil {
		t.Fatalf("FetchUser = %v, %v", su, err)
	}
	if !su.Has("manage") || su.Name != "Mgr" {
		t.Errorf("session user = %+v", su)
	}

	if su, _ := fetcher.FetchUser(ctx, "not-an-id"); su != nil {
		t.Error("expected nil for malformed id")
	}

	_ = store.SetStatus(ctx, u.ID, userstore.StatusDisabled)
	if su, _ := fetcher.FetchUser(ctx, u.ID.Hex()); su != nil {
		t.Error("expected nil for disabled user")
	}
}
