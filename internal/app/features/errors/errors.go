// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/sfshr/internal/app/system/formutil"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	formutil.Base
	Message string
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct {
	Menu *menu.Registry

	render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

// NewHandler constructs an errors Handler. nav may be nil.
func NewHandler(nav *menu.Registry) *Handler {
	return &Handler{
		Menu:   nav,
		render: func(w http.ResponseWriter, r *http.Request, name string, data any) { templates.Render(w, r, name, data) },
	}
}

// WithRenderer replaces the template renderer.
func (h *Handler) WithRenderer(fn func(w http.ResponseWriter, r *http.Request, name string, data any)) *Handler {
	h.render = fn
	return h
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, http.StatusForbidden, "Access denied", "You don't have permission to view this page.", menu.BasePath)
}

// NotFound renders the "page not found" page for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, http.StatusNotFound, "Page not found", "The page you asked for does not exist.", menu.BasePath)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, status int, title, msg, back string) {
	data := pageData{Message: msg}
	formutil.SetBase(&data.Base, r, h.Menu, title, back)
	w.WriteHeader(status)
	h.render(w, r, "error_page", data)
}
