// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/sfshr/internal/app/system/auth"
)

// Capabilities checked by the HR admin pages and REST routes.
const (
	CapRead            = "read"
	CapManage          = "manage"
	CapAttendanceAdmin = "attendance_admin"
)

// Can reports whether the current request's user holds capability c.
// Returns false if no user is present (i.e., not signed in).
func Can(r *http.Request, c string) bool {
	u, ok := auth.CurrentUser(r)
	return ok && u.Has(c)
}

// CanAny reports whether the current request's user holds at least one of caps.
func CanAny(r *http.Request, caps ...string) bool {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return false
	}
	for _, c := range caps {
		if u.Has(c) {
			return true
		}
	}
	return false
}

// UserCtx returns the user's name, id and a found flag.
func UserCtx(r *http.Request) (name, userID string, ok bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", false
	}
	return u.Name, u.ID, true
}

// Normalize lowercases and trims capability names and drops empties and
// duplicates, keeping first-seen order.
func Normalize(caps []string) []string {
	seen := make(map[string]struct{}, len(caps))
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
