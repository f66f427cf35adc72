// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	errorsfeature "github.com/dalemusser/sfshr/internal/app/features/errors"
	healthfeature "github.com/dalemusser/sfshr/internal/app/features/health"
	homefeature "github.com/dalemusser/sfshr/internal/app/features/home"
	loginfeature "github.com/dalemusser/sfshr/internal/app/features/login"
	logoutfeature "github.com/dalemusser/sfshr/internal/app/features/logout"
	profilesfeature "github.com/dalemusser/sfshr/internal/app/features/profiles"
	settlementsfeature "github.com/dalemusser/sfshr/internal/app/features/settlements"
	shiftswapsfeature "github.com/dalemusser/sfshr/internal/app/features/shiftswaps"
	loginstore "github.com/dalemusser/sfshr/internal/app/store/logins"
	employeestore "github.com/dalemusser/sfshr/internal/app/store/employees"
	settlementstore "github.com/dalemusser/sfshr/internal/app/store/settlements"
	shiftswapstore "github.com/dalemusser/sfshr/internal/app/store/shiftswaps"
	userstore "github.com/dalemusser/sfshr/internal/app/store/users"
	"github.com/dalemusser/sfshr/internal/app/system/auth"
	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/modules"
	"github.com/dalemusser/sfshr/internal/app/system/ratelimit"
	"github.com/dalemusser/sfshr/internal/app/system/rest"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for the app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. The admin area, its menu pages and the REST
// namespace are assembled here; feature modules register themselves
// against the menu and REST registries through the module loader.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}
	// Fresh user data on each request, so capability changes apply at once.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	nav := menu.New(logger)
	nav.AddMenuPage(menu.Parent{Slug: menu.HRSlug, Title: "HR", Capability: authz.CapRead})
	restSrv := rest.NewServer(rest.Namespace, logger)

	db := deps.MongoDatabase
	settlements := settlementstore.New(db)
	employees := employeestore.New(db)
	swaps := shiftswapstore.New(db)

	loader := modules.NewLoader(modules.Hooks{Menu: nav, REST: restSrv}, appCfg.AdminEnabled, logger)
	err = loader.Load(
		settlementsfeature.NewRouter(settlementsfeature.NewHandler(settlements, employees, nav, logger), logger),
		shiftswapsfeature.NewController(swaps, logger),
		profilesfeature.NewModule(employees, logger),
	)
	if err != nil {
		logger.Error("module load failed", zap.Error(err))
		return nil, err
	}

	errorsHandler := errorsfeature.NewHandler(nav)

	r := chi.NewRouter()
	r.Use(sessionMgr.LoadSessionUser)

	// Health and REST sit outside CSRF; REST routes are read-only.
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.MongoClient, logger)))
	r.Mount(restSrv.Prefix(), restSrv.Routes())

	loginHandler := loginfeature.NewHandler(userstore.New(db), sessionMgr, logger).
		WithLoginRecorder(loginstore.New(db)).
		WithLimiter(ratelimit.NewLoginLimiter())

	r.Group(func(pr chi.Router) {
		pr.Use(csrfMiddleware(appCfg.SessionKey, secure, http.HandlerFunc(errorsHandler.Forbidden)))

		pr.Mount("/login", loginfeature.Routes(loginHandler))
		pr.Mount("/logout", logoutfeature.Routes(logoutfeature.NewHandler(sessionMgr, logger)))
		pr.Get("/forbidden", errorsHandler.Forbidden)

		if appCfg.AdminEnabled {
			home := homefeature.NewHandler(nav, swaps, logger)
			pr.Route("/admin", func(ar chi.Router) {
				ar.Use(sessionMgr.RequireSignedIn)
				ar.Get("/", home.ServeRoot)
				nav.Mount(ar, sessionMgr)
			})
		}

		pr.Get("/", func(w http.ResponseWriter, r *http.Request) {
			if appCfg.AdminEnabled {
				http.Redirect(w, r, "/admin", http.StatusSeeOther)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		})
	})

	r.NotFound(errorsHandler.NotFound)

	return r, nil
}

// csrfMiddleware protects the HTML routes. The token key is derived from
// the session key so one secret configures both. Outside prod the request
// is marked plaintext so the origin check accepts http.
func csrfMiddleware(sessionKey string, secure bool, onFail http.Handler) func(http.Handler) http.Handler {
	key := sha256.Sum256([]byte("csrf:" + sessionKey))
	protect := csrf.Protect(key[:],
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(onFail),
	)
	return func(next http.Handler) http.Handler {
		h := protect(next)
		if secure {
			return h
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}
