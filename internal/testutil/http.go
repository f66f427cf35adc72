package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/sfshr/internal/app/system/auth"
	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestUser describes a signed-in user for handler tests.
type TestUser struct {
	ID           string
	Name         string
	LoginID      string
	Capabilities []string
}

// ManagerUser holds the manage capability.
func ManagerUser() TestUser {
	return TestUser{
		ID:           primitive.NewObjectID().Hex(),
		Name:         "HR Manager",
		LoginID:      "manager@example.com",
		Capabilities: []string{authz.CapRead, authz.CapManage},
	}
}

// AttendanceAdminUser holds attendance_admin but not manage.
func AttendanceAdminUser() TestUser {
	return TestUser{
		ID:           primitive.NewObjectID().Hex(),
		Name:         "Attendance Admin",
		LoginID:      "attendance@example.com",
		Capabilities: []string{authz.CapRead, authz.CapAttendanceAdmin},
	}
}

// StaffUser holds only read.
func StaffUser() TestUser {
	return TestUser{
		ID:           primitive.NewObjectID().Hex(),
		Name:         "Staff Member",
		LoginID:      "staff@example.com",
		Capabilities: []string{authz.CapRead},
	}
}

// WithUser adds a user to the request context for testing authenticated handlers.
// This bypasses the session middleware and injects the user directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:           user.ID,
		Name:         user.Name,
		LoginID:      user.LoginID,
		Capabilities: user.Capabilities,
	})
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with a user in context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	return WithUser(httptest.NewRequest(method, target, nil), user)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	if location := r.Header().Get("Location"); location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
