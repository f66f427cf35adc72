package formutil

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/sfshr/internal/app/system/auth"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"go.uber.org/zap"
)

func TestSetBase_SignedIn(t *testing.T) {
	nav := menu.New(zap.NewNop())
	nav.AddMenuPage(menu.Parent{Slug: "hr", Title: "HR"})
	if err := nav.AddSubmenuPage("hr", menu.Page{Title: "Settlements", MenuTitle: "Settlements", Capability: "manage", Slug: "settlements"}); err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest("GET", "/admin/settlements?return=/admin/home", nil)
	r = auth.WithTestUser(r, &auth.SessionUser{ID: "u1", Name: "Sara", Capabilities: []string{"manage"}})

	var b Base
	SetBase(&b, r, nav, "Settlements", "/admin")

	if b.Title != "Settlements" || !b.IsLoggedIn || b.UserName != "Sara" {
		t.Errorf("unexpected base: %+v", b)
	}
	if len(b.Nav) != 1 || len(b.Nav[0].Items) != 1 {
		t.Errorf("Nav = %+v, want one section with one item", b.Nav)
	}
}

func TestSetBase_NilNav(t *testing.T) {
	var b Base
	SetBase(&b, httptest.NewRequest("GET", "/login", nil), nil, "Sign in", "/")
	if b.IsLoggedIn {
		t.Error("expected signed out")
	}
	if b.Nav != nil {
		t.Errorf("Nav = %v, want nil", b.Nav)
	}
}

func TestSetError_Escapes(t *testing.T) {
	var b Base
	b.SetError("<b>bad</b>")
	if string(b.Error) != "&lt;b&gt;bad&lt;/b&gt;" {
		t.Errorf("Error = %q", b.Error)
	}
}
