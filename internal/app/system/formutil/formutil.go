// Package formutil provides the common page fields embedded in admin view
// models, and helpers for re-rendering a form with an error.
//
// Example usage:
//
//	type newSettlementData struct {
//		formutil.Base
//		EmployeeID string
//		Notes      string
//	}
//
//	data := newSettlementData{EmployeeID: r.FormValue("employee_id")}
//	formutil.SetBase(&data.Base, r, h.Menu, "New Settlement", "/admin/settlements")
//	data.SetError("Employee is required.")
//	templates.Render(w, r, "settlement_new", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// Base contains common fields for admin pages.
type Base struct {
	Title       string
	IsLoggedIn  bool
	UserName    string
	BackURL     string
	CurrentPath string
	CSRFToken   string
	Nav         []menu.Section
	Notice      string
	Error       template.HTML
}

// SetBase populates the common Base fields from the request context.
// nav may be nil, in which case no navigation is shown.
func SetBase(b *Base, r *http.Request, nav *menu.Registry, title, backDefault string) {
	uname, _, signedIn := authz.UserCtx(r)
	b.Title = title
	b.IsLoggedIn = signedIn
	b.UserName = uname
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
	b.CSRFToken = csrf.Token(r)
	if nav != nil {
		b.Nav = nav.Visible(r)
	}
}

// SetError sets the error message shown above the form.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}
