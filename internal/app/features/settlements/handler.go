// internal/app/features/settlements/handler.go
package settlements

import (
	"context"
	"net/http"

	settlementstore "github.com/dalemusser/sfshr/internal/app/store/settlements"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Store is the settlement persistence the screens need.
type Store interface {
	Create(ctx context.Context, st models.Settlement) (models.Settlement, error)
	GetByID(ctx context.Context, id int64) (models.Settlement, error)
	List(ctx context.Context, f settlementstore.ListFilter) ([]models.Settlement, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// Employees looks up the employee a settlement is for.
type Employees interface {
	GetByID(ctx context.Context, id int64) (models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
}

// RenderFunc writes the named template.
type RenderFunc func(w http.ResponseWriter, r *http.Request, name string, data any)

// Handler implements Views against the settlement and employee stores.
type Handler struct {
	Store     Store
	Employees Employees
	Menu      *menu.Registry
	Log       *zap.Logger

	render RenderFunc
}

// NewHandler constructs a settlements Handler.
func NewHandler(store Store, employees Employees, nav *menu.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		Store:     store,
		Employees: employees,
		Menu:      nav,
		Log:       logger,
		render:    func(w http.ResponseWriter, r *http.Request, name string, data any) { templates.Render(w, r, name, data) },
	}
}

// WithRenderer replaces the template renderer.
func (h *Handler) WithRenderer(fn RenderFunc) *Handler {
	h.render = fn
	return h
}

func viewURL(id int64) string {
	return menu.URL(PageSlug) + "?action=view&id=" + itoa(id)
}
