// Package menu is the admin navigation registry. Features register pages
// against it at startup; bootstrap mounts the registered pages under /admin.
package menu

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/dalemusser/sfshr/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BasePath is where admin pages are served.
const BasePath = "/admin"

// HRSlug is the top-level heading the HR pages register under.
const HRSlug = "sfs-hr"

var (
	ErrEmptySlug     = errors.New("menu: page slug is empty")
	ErrDuplicateSlug = errors.New("menu: page slug already registered")
	ErrNoParent      = errors.New("menu: parent menu not registered")
)

// Parent is a top-level menu heading.
type Parent struct {
	Slug       string
	Title      string
	Capability string
}

// Page is one admin page. A page with an empty MenuTitle is routable but
// not listed in navigation. Submit, when set, receives form posts to the
// same path.
type Page struct {
	Title      string
	MenuTitle  string
	Capability string
	Slug       string
	Render     http.HandlerFunc
	Submit     http.HandlerFunc
}

// Item is a navigation entry as shown to a user.
type Item struct {
	Title string
	URL   string
}

// Section is a parent heading with the entries the user may see.
type Section struct {
	Title string
	Items []Item
}

type entry struct {
	parent string
	page   Page
}

// Registry holds registered menus. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	parents []Parent
	pages   []entry
	bySlug  map[string]int
	log     *zap.Logger
}

// New returns an empty registry.
func New(logger *zap.Logger) *Registry {
	return &Registry{bySlug: make(map[string]int), log: logger}
}

// AddMenuPage registers a top-level heading. Re-registering a slug
// replaces its title and capability.
func (m *Registry) AddMenuPage(p Parent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.parents {
		if m.parents[i].Slug == p.Slug {
			m.parents[i] = p
			return
		}
	}
	m.parents = append(m.parents, p)
}

// AddSubmenuPage registers p under parentSlug. An empty parentSlug makes a
// hidden page that belongs to no heading.
func (m *Registry) AddSubmenuPage(parentSlug string, p Page) error {
	if p.Slug == "" {
		return ErrEmptySlug
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if parentSlug != "" && !m.hasParent(parentSlug) {
		return fmt.Errorf("%w: %s", ErrNoParent, parentSlug)
	}
	if _, dup := m.bySlug[p.Slug]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
	}
	m.bySlug[p.Slug] = len(m.pages)
	m.pages = append(m.pages, entry{parent: parentSlug, page: p})

	if m.log != nil {
		m.log.Debug("admin page registered",
			zap.String("parent", parentSlug),
			zap.String("slug", p.Slug),
			zap.String("capability", p.Capability))
	}
	return nil
}

// Lookup returns the page registered under slug.
func (m *Registry) Lookup(slug string) (Page, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.bySlug[slug]
	if !ok {
		return Page{}, false
	}
	return m.pages[i].page, true
}

// URL returns the path a page with the given slug is served at.
func URL(slug string) string {
	return BasePath + "/" + slug
}

// Visible returns the navigation the current user may see. Headings
// without visible entries are omitted.
func (m *Registry) Visible(r *http.Request) []Section {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Section
	for _, p := range m.parents {
		if p.Capability != "" && !u.Has(p.Capability) {
			continue
		}
		sec := Section{Title: p.Title}
		for _, e := range m.pages {
			if e.parent != p.Slug || e.page.MenuTitle == "" {
				continue
			}
			if e.page.Capability != "" && !u.Has(e.page.Capability) {
				continue
			}
			sec.Items = append(sec.Items, Item{Title: e.page.MenuTitle, URL: URL(e.page.Slug)})
		}
		if len(sec.Items) > 0 {
			out = append(out, sec)
		}
	}
	return out
}

// Mount adds the routes of every registered page to r, each gated by the
// page's capability.
func (m *Registry) Mount(r chi.Router, sm *auth.SessionManager) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.pages {
		page := e.page
		gate := func(h http.Handler) http.Handler { return h }
		if page.Capability != "" {
			gate = sm.RequireCapability(page.Capability)
		}
		r.Method(http.MethodGet, "/"+page.Slug, gate(page.Render))
		if page.Submit != nil {
			r.Method(http.MethodPost, "/"+page.Slug, gate(page.Submit))
		}
	}
}

func (m *Registry) hasParent(slug string) bool {
	for _, p := range m.parents {
		if p.Slug == slug {
			return true
		}
	}
	return false
}
