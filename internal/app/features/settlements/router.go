// internal/app/features/settlements/router.go
package settlements

import (
	"net/http"

	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/modules"
	"github.com/dalemusser/sfshr/internal/app/system/normalize"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// PageSlug is the admin page the settlement screens are served from.
const PageSlug = "settlements"

// Views renders the settlement screens. Handler implements it.
type Views interface {
	ServeList(w http.ResponseWriter, r *http.Request)
	ServeNew(w http.ResponseWriter, r *http.Request)
	ServeView(w http.ResponseWriter, r *http.Request, id int64)
	HandleCreate(w http.ResponseWriter, r *http.Request)
}

// Router owns the settlements admin page and picks which screen a
// request gets.
type Router struct {
	views Views
	log   *zap.Logger
}

// NewRouter constructs a Router delegating to v.
func NewRouter(v Views, logger *zap.Logger) *Router {
	return &Router{views: v, log: logger}
}

func (rt *Router) Name() string    { return "settlements" }
func (rt *Router) AdminOnly() bool { return true }

// Init registers the settlements menu entry.
func (rt *Router) Init(h modules.Hooks) error {
	return rt.RegisterMenu(h.Menu)
}

// RegisterMenu adds the Settlements entry under the HR heading, visible
// to users holding manage.
func (rt *Router) RegisterMenu(m *menu.Registry) error {
	return m.AddSubmenuPage(menu.HRSlug, menu.Page{
		Title:      "Settlements",
		MenuTitle:  "Settlements",
		Capability: authz.CapManage,
		Slug:       PageSlug,
		Render:     rt.RenderPage,
		Submit:     rt.views.HandleCreate,
	})
}

// RenderPage dispatches on ?action= and ?id=:
//
//	create          → new settlement form
//	view, id > 0    → read-only view
//	edit, id > 0    → read-only view (there is no edit form)
//	anything else   → list
func (rt *Router) RenderPage(w http.ResponseWriter, r *http.Request) {
	action := normalize.Key(query.Get(r, "action"))
	if action == "" {
		action = "list"
	}
	id := normalize.AbsInt(query.Get(r, "id"))

	switch action {
	case "create":
		rt.views.ServeNew(w, r)
	case "edit", "view":
		if id > 0 {
			rt.views.ServeView(w, r, id)
			return
		}
		rt.views.ServeList(w, r)
	default:
		rt.views.ServeList(w, r)
	}
}
