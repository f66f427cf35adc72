// internal/app/features/profiles/module.go
package profiles

import (
	"context"
	"net/http"

	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/modules"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Employees is the employee lookup the profile pages need.
type Employees interface {
	GetByID(ctx context.Context, id int64) (models.Employee, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (models.Employee, error)
}

// RenderFunc writes the named template.
type RenderFunc func(w http.ResponseWriter, r *http.Request, name string, data any)

// page is a profile screen that registers its own admin page.
type page interface {
	Hooks(m *menu.Registry) error
}

// Module loads the employee profile and my profile pages. It only runs in
// the administrative context.
type Module struct {
	Employees Employees
	Log       *zap.Logger

	render RenderFunc
}

// NewModule constructs the profiles Module.
func NewModule(emps Employees, logger *zap.Logger) *Module {
	return &Module{
		Employees: emps,
		Log:       logger,
		render:    func(w http.ResponseWriter, r *http.Request, name string, data any) { templates.Render(w, r, name, data) },
	}
}

// WithRenderer replaces the template renderer.
func (m *Module) WithRenderer(fn RenderFunc) *Module {
	m.render = fn
	return m
}

func (m *Module) Name() string    { return "profiles" }
func (m *Module) AdminOnly() bool { return true }

// Init instantiates both profile pages and lets each register itself.
func (m *Module) Init(h modules.Hooks) error {
	pages := []page{
		NewEmployeeProfilePage(m.Employees, h.Menu, m.render, m.Log),
		NewMyProfilePage(m.Employees, h.Menu, m.render, m.Log),
	}
	for _, p := range pages {
		if err := p.Hooks(h.Menu); err != nil {
			return err
		}
	}
	return nil
}
