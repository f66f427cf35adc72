package loginstore_test

import (
	"net/http/httptest"
	"testing"

	loginstore "github.com/dalemusser/sfshr/internal/app/store/logins"
	"github.com/dalemusser/sfshr/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRecordAndRecent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := loginstore.New(db)
	uid := primitive.NewObjectID()
	r := httptest.NewRequest("POST", "/login", nil)
	r.Header.Set("User-Agent", "test-agent")

	for i := 0; i < 3; i++ {
		if err := store.Record(ctx, r, uid, loginstore.ProviderPassword); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if err := store.Record(ctx, r, primitive.NewObjectID(), loginstore.ProviderPassword); err != nil {
		t.Fatalf("Record other: %v", err)
	}

	got, err := store.Recent(ctx, uid, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent returned %d records, want 2", len(got))
	}
	if got[0].UserAgent != "test-agent" || got[0].Provider != loginstore.ProviderPassword {
		t.Errorf("record = %+v", got[0])
	}
	if got[0].CreatedAt.Before(got[1].CreatedAt) {
		t.Error("Recent not ordered newest first")
	}
}
