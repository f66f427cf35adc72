// internal/app/features/login/handler.go
package login

// Terminology: User Identifiers
//   - UserID / userID / user_id: The MongoDB ObjectID (_id) that uniquely identifies a user record
//   - LoginID / loginID / login_id: The human-readable string users type to log in

import (
	"context"
	"errors"
	"net/http"
	"strings"

	loginstore "github.com/dalemusser/sfshr/internal/app/store/logins"
	userstore "github.com/dalemusser/sfshr/internal/app/store/users"
	"github.com/dalemusser/sfshr/internal/app/system/auth"
	"github.com/dalemusser/sfshr/internal/app/system/formutil"
	"github.com/dalemusser/sfshr/internal/app/system/limits"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/ratelimit"
	"github.com/dalemusser/sfshr/internal/app/system/timeouts"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Authenticator checks a login id and password.
type Authenticator interface {
	Authenticate(ctx context.Context, loginID, password string) (*models.User, error)
}

// LoginRecorder keeps a history of successful sign-ins.
type LoginRecorder interface {
	Record(ctx context.Context, r *http.Request, userID primitive.ObjectID, provider string) error
}

type Handler struct {
	Users      Authenticator
	Logins     LoginRecorder
	Limiter    *ratelimit.LoginLimiter
	SessionMgr *auth.SessionManager
	Log        *zap.Logger

	render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

type loginFormData struct {
	formutil.Base
	LoginID   string
	ReturnURL string
}

func NewHandler(users Authenticator, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Users:      users,
		SessionMgr: sessionMgr,
		Log:        logger,
		render:     func(w http.ResponseWriter, r *http.Request, name string, data any) { templates.Render(w, r, name, data) },
	}
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, urlutil.SafeReturn(query.Get(r, "return"), "", menu.BasePath), http.StatusSeeOther)
		return
	}
	data := loginFormData{ReturnURL: query.Get(r, "return")}
	formutil.SetBase(&data.Base, r, nil, "Sign in", "/")
	h.render(w, r, "login", data)
}

// HandleLoginPost handles POST /login.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxLoginFormSize)
	if err := r.ParseForm(); err != nil {
		h.renderFormWithError(w, r, "Invalid form submission.", "", "")
		return
	}
	loginID := strings.TrimSpace(r.FormValue("login_id"))
	password := r.FormValue("password")
	returnURL := strings.TrimSpace(r.FormValue("return"))

	if loginID == "" || password == "" {
		h.renderFormWithError(w, r, "Login ID and password are required.", loginID, returnURL)
		return
	}

	if h.Limiter != nil {
		if ok, msg := h.Limiter.Check(r, loginID); !ok {
			h.Log.Warn("login throttled", zap.String("login_id", loginID), zap.String("ip", ratelimit.ClientIP(r)))
			h.renderFormWithStatus(w, r, http.StatusTooManyRequests, msg, loginID, returnURL)
			return
		}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "login authenticate")
	defer cancel()

	u, err := h.Users.Authenticate(ctx, loginID, password)
	if errors.Is(err, userstore.ErrInvalidCredentials) {
		h.Log.Info("login rejected", zap.String("login_id", loginID))
		h.renderFormWithError(w, r, "Invalid login ID or password.", loginID, returnURL)
		return
	}
	if err != nil {
		h.Log.Error("login lookup failed", zap.Error(err), zap.String("login_id", loginID))
		h.renderFormWithError(w, r, "Sign-in is unavailable right now. Please try again.", loginID, returnURL)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, u.ID.Hex()); err != nil {
		h.Log.Error("session save failed", zap.Error(err), zap.String("user_id", u.ID.Hex()))
		h.renderFormWithError(w, r, "Could not start your session. Please try again.", loginID, returnURL)
		return
	}
	if h.Limiter != nil {
		h.Limiter.ResetAccount(loginID)
	}
	if h.Logins != nil {
		if err := h.Logins.Record(ctx, r, u.ID, loginstore.ProviderPassword); err != nil {
			h.Log.Warn("login record failed", zap.Error(err), zap.String("user_id", u.ID.Hex()))
		}
	}
	h.Log.Info("login success", zap.String("user_id", u.ID.Hex()), zap.String("login_id", u.LoginID))

	dest := urlutil.SafeReturn(returnURL, "", menu.BasePath)
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, loginID, returnURL string) {
	h.renderFormWithStatus(w, r, http.StatusUnauthorized, msg, loginID, returnURL)
}

func (h *Handler) renderFormWithStatus(w http.ResponseWriter, r *http.Request, status int, msg, loginID, returnURL string) {
	data := loginFormData{LoginID: loginID, ReturnURL: returnURL}
	formutil.SetBase(&data.Base, r, nil, "Sign in", "/")
	data.SetError(msg)
	w.WriteHeader(status)
	h.render(w, r, "login", data)
}

// WithRenderer replaces the template renderer.
func (h *Handler) WithRenderer(fn func(w http.ResponseWriter, r *http.Request, name string, data any)) *Handler {
	h.render = fn
	return h
}

// WithLoginRecorder sets where successful sign-ins are recorded.
func (h *Handler) WithLoginRecorder(rec LoginRecorder) *Handler {
	h.Logins = rec
	return h
}

// WithLimiter throttles sign-in attempts.
func (h *Handler) WithLimiter(ll *ratelimit.LoginLimiter) *Handler {
	h.Limiter = ll
	return h
}
