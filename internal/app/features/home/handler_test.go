package home_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/sfshr/internal/app/features/home"
	"github.com/dalemusser/sfshr/internal/testutil"
	"go.uber.org/zap"
)

type fakeCounter struct {
	n     int64
	calls int
}

func (f *fakeCounter) PendingCount(context.Context) (int64, error) {
	f.calls++
	return f.n, nil
}

func serve(t *testing.T, user testutil.TestUser, swaps *fakeCounter) {
	t.Helper()
	var rendered int
	h := home.NewHandler(nil, swaps, zap.NewNop()).WithRenderer(func(w http.ResponseWriter, r *http.Request, name string, data any) {
		rendered++
		if name != "admin_home" {
			t.Errorf("rendered %q, want admin_home", name)
		}
	})
	h.ServeRoot(httptest.NewRecorder(), testutil.NewAuthenticatedRequest("GET", "/admin", user))
	if rendered != 1 {
		t.Fatalf("rendered %d times", rendered)
	}
}

func TestServeRoot_ManagerSeesSwapCount(t *testing.T) {
	swaps := &fakeCounter{n: 4}
	serve(t, testutil.ManagerUser(), swaps)
	if swaps.calls != 1 {
		t.Errorf("PendingCount called %d times, want 1", swaps.calls)
	}
}

func TestServeRoot_StaffSkipsSwapCount(t *testing.T) {
	swaps := &fakeCounter{n: 4}
	serve(t, testutil.StaffUser(), swaps)
	if swaps.calls != 0 {
		t.Errorf("PendingCount called %d times for staff", swaps.calls)
	}
}
