package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/formutil"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// SwapCounter reports how many shift swaps await a manager.
type SwapCounter interface {
	PendingCount(ctx context.Context) (int64, error)
}

// Handler holds dependencies needed to serve the admin home page.
type Handler struct {
	Menu  *menu.Registry
	Swaps SwapCounter
	Log   *zap.Logger

	render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

type homeData struct {
	formutil.Base
	ShowSwaps    bool
	PendingSwaps int64
}

func NewHandler(nav *menu.Registry, swaps SwapCounter, logger *zap.Logger) *Handler {
	return &Handler{
		Menu:   nav,
		Swaps:  swaps,
		Log:    logger,
		render: func(w http.ResponseWriter, r *http.Request, name string, data any) { templates.Render(w, r, name, data) },
	}
}

// WithRenderer replaces the template renderer.
func (h *Handler) WithRenderer(fn func(w http.ResponseWriter, r *http.Request, name string, data any)) *Handler {
	h.render = fn
	return h
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /admin – landing                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	var data homeData
	formutil.SetBase(&data.Base, r, h.Menu, "HR Administration", menu.BasePath)

	if h.Swaps != nil && authz.CanAny(r, authz.CapManage, authz.CapAttendanceAdmin) {
		ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "home pending swaps")
		n, err := h.Swaps.PendingCount(ctx)
		cancel()
		if err != nil {
			h.Log.Warn("pending swap count failed", zap.Error(err))
		} else {
			data.ShowSwaps = true
			data.PendingSwaps = n
		}
	}

	h.render(w, r, "admin_home", data)
}
