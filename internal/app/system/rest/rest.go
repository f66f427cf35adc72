// Package rest is the JSON route registry. Features register routes with a
// permission callback; the registry runs the callback before the handler
// and writes the response envelope.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/dalemusser/sfshr/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Namespace is the versioned prefix HR routes live under.
const Namespace = "sfs-hr/v1"

var ErrDuplicateRoute = errors.New("rest: route already registered")

// Response is a status code paired with a payload that is written as JSON.
type Response struct {
	Status int
	Data   any
}

// OK wraps data in a 200 response.
func OK(data any) Response {
	return Response{Status: http.StatusOK, Data: data}
}

// Callback produces the response for a request.
type Callback func(r *http.Request) (Response, error)

// Permission decides whether the request may reach the callback.
type Permission func(r *http.Request) bool

// Route is one registered endpoint.
type Route struct {
	Method             string
	Callback           Callback
	PermissionCallback Permission
}

// Error is the error envelope: {"code":…,"message":…,"data":{"status":…}}.
type Error struct {
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Data    ErrorData `json:"data"`
}

type ErrorData struct {
	Status int `json:"status"`
}

type registered struct {
	path  string
	route Route
}

// Server collects routes for one namespace.
type Server struct {
	mu        sync.RWMutex
	namespace string
	routes    []registered
	seen      map[string]struct{}
	log       *zap.Logger
}

// NewServer returns an empty registry for namespace.
func NewServer(namespace string, logger *zap.Logger) *Server {
	return &Server{
		namespace: strings.Trim(namespace, "/"),
		seen:      make(map[string]struct{}),
		log:       logger,
	}
}

// Prefix is the mount path for this server's routes, e.g. "/sfs-hr/v1".
func (s *Server) Prefix() string {
	return "/" + s.namespace
}

// RegisterRoute adds route at path (relative to the namespace). A missing
// method defaults to GET.
func (s *Server) RegisterRoute(path string, route Route) error {
	if route.Method == "" {
		route.Method = http.MethodGet
	}
	if route.Callback == nil {
		return fmt.Errorf("rest: %s %s has no callback", route.Method, path)
	}
	path = "/" + strings.Trim(path, "/")
	key := route.Method + " " + path

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.seen[key]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, key)
	}
	s.seen[key] = struct{}{}
	s.routes = append(s.routes, registered{path: path, route: route})

	s.log.Debug("rest route registered",
		zap.String("method", route.Method),
		zap.String("path", s.Prefix()+path))
	return nil
}

// Routes returns a router serving every registered route. Mount it at
// Prefix().
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, reg := range s.routes {
		r.Method(reg.route.Method, reg.path, s.dispatch(reg.route))
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "rest_no_route", "No route was found matching the URL and request method.")
	})
	return r
}

func (s *Server) dispatch(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if route.PermissionCallback != nil && !route.PermissionCallback(r) {
			status := http.StatusForbidden
			if _, ok := auth.CurrentUser(r); !ok {
				status = http.StatusUnauthorized
			}
			WriteError(w, status, "rest_forbidden", "Sorry, you are not allowed to do that.")
			return
		}

		resp, err := route.Callback(r)
		if err != nil {
			s.log.Error("rest callback failed",
				zap.Error(err),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path))
			WriteError(w, http.StatusInternalServerError, "internal_error", "The request could not be completed.")
			return
		}
		if resp.Status == 0 {
			resp.Status = http.StatusOK
		}
		WriteJSON(w, resp.Status, resp.Data)
	}
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the error envelope.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, Error{Code: code, Message: message, Data: ErrorData{Status: status}})
}
