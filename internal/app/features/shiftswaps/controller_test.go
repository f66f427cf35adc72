package shiftswaps_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/sfshr/internal/app/features/shiftswaps"
	"github.com/dalemusser/sfshr/internal/app/system/auth"
	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/modules"
	"github.com/dalemusser/sfshr/internal/app/system/rest"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"github.com/dalemusser/sfshr/internal/testutil"
	"go.uber.org/zap"
)

type fakeService struct {
	swaps    []models.ShiftSwap
	count    int64
	err      error
	listRuns int
}

func (f *fakeService) PendingForManagers(context.Context) ([]models.ShiftSwap, error) {
	f.listRuns++
	return f.swaps, f.err
}

func (f *fakeService) PendingCount(context.Context) (int64, error) {
	return f.count, f.err
}

func newTestServer(t *testing.T, svc *fakeService) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	srv := rest.NewServer(rest.Namespace, logger)
	ctrl := shiftswaps.NewController(svc, logger)
	if err := modules.NewLoader(modules.Hooks{REST: srv}, false, logger).Load(ctrl); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return srv.Routes()
}

func sampleSwaps() []models.ShiftSwap {
	at := time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC)
	return []models.ShiftSwap{
		{ID: 9, RequesterID: 1, RequesterName: "Ali", RequesterShiftDate: "2026-10-20",
			TargetID: 2, TargetName: "Mona", TargetShiftDate: "2026-10-21",
			Reason: "family event", Status: models.SwapManagerPending, CreatedAt: at, UpdatedAt: at},
	}
}

func TestCheckManagerPermission_TruthTable(t *testing.T) {
	tests := []struct {
		name string
		caps []string
		want bool
	}{
		{"neither", nil, false},
		{"manage only", []string{authz.CapManage}, true},
		{"attendance admin only", []string{authz.CapAttendanceAdmin}, true},
		{"both", []string{authz.CapManage, authz.CapAttendanceAdmin}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
				&auth.SessionUser{ID: "u", Capabilities: tt.caps})
			if got := shiftswaps.CheckManagerPermission(req); got != tt.want {
				t.Errorf("CheckManagerPermission = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckManagerPermission_SignedOut(t *testing.T) {
	if shiftswaps.CheckManagerPermission(httptest.NewRequest("GET", "/", nil)) {
		t.Error("expected false without a user")
	}
}

func TestGetSwaps_ReturnsServiceResultUnmodified(t *testing.T) {
	svc := &fakeService{swaps: sampleSwaps()}
	h := newTestServer(t, svc)

	req := testutil.NewAuthenticatedRequest("GET", "/shift-swaps", testutil.ManagerUser())
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	want, _ := json.Marshal(svc.swaps)
	if got := rec.Body.Bytes(); string(got) != string(want)+"\n" {
		t.Errorf("body = %s\nwant  %s", got, want)
	}
}

func TestGetSwaps_EmptyList(t *testing.T) {
	h := newTestServer(t, &fakeService{swaps: []models.ShiftSwap{}})

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewAuthenticatedRequest("GET", "/shift-swaps", testutil.AttendanceAdminUser()))

	rec.AssertStatus(t, http.StatusOK)
	if rec.Body.String() != "[]\n" {
		t.Errorf("body = %q, want []", rec.Body.String())
	}
}

func TestGetSwaps_Forbidden_HandlerNotRun(t *testing.T) {
	svc := &fakeService{swaps: sampleSwaps()}
	h := newTestServer(t, svc)

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewAuthenticatedRequest("GET", "/shift-swaps", testutil.StaffUser()))
	rec.AssertStatus(t, http.StatusForbidden)

	rec = testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewRequest("GET", "/shift-swaps"))
	rec.AssertStatus(t, http.StatusUnauthorized)

	if svc.listRuns != 0 {
		t.Errorf("service called %d times for unauthorized requests", svc.listRuns)
	}
}

func TestGetPendingCount(t *testing.T) {
	for _, n := range []int64{0, 1, 42} {
		h := newTestServer(t, &fakeService{count: n})

		rec := testutil.NewRecorder()
		h.ServeHTTP(rec, testutil.NewAuthenticatedRequest("GET", "/shift-swaps/pending-count", testutil.ManagerUser()))
		rec.AssertStatus(t, http.StatusOK)

		var body map[string]json.RawMessage
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body) != 1 {
			t.Errorf("body has %d keys, want exactly one: %s", len(body), rec.Body.String())
		}
		var count int64
		if err := json.Unmarshal(body["count"], &count); err != nil || count != n {
			t.Errorf("count = %s, want %d", body["count"], n)
		}
	}
}

func TestGetPendingCount_ServiceError(t *testing.T) {
	h := newTestServer(t, &fakeService{err: errors.New("db down")})

	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, testutil.NewAuthenticatedRequest("GET", "/shift-swaps/pending-count", testutil.ManagerUser()))
	rec.AssertStatus(t, http.StatusInternalServerError)
}

func TestController_NotAdminOnly(t *testing.T) {
	c := shiftswaps.NewController(&fakeService{}, zap.NewNop())
	if c.AdminOnly() {
		t.Error("REST routes must load outside the admin context")
	}
}
