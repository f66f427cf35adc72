// internal/app/features/profiles/employeeprofile.go
package profiles

import (
	"errors"
	"net/http"

	employeestore "github.com/dalemusser/sfshr/internal/app/store/employees"
	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/formutil"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/normalize"
	"github.com/dalemusser/sfshr/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// EmployeeProfileSlug is the hidden admin page showing one employee.
const EmployeeProfileSlug = "employee-profile"

// EmployeeProfilePage shows any employee by ?id= to managers.
type EmployeeProfilePage struct {
	employees Employees
	nav       *menu.Registry
	render    RenderFunc
	log       *zap.Logger
}

func NewEmployeeProfilePage(emps Employees, nav *menu.Registry, render RenderFunc, logger *zap.Logger) *EmployeeProfilePage {
	return &EmployeeProfilePage{employees: emps, nav: nav, render: render, log: logger}
}

// Hooks registers the page. It has no menu entry; other screens link to it.
func (p *EmployeeProfilePage) Hooks(m *menu.Registry) error {
	return m.AddSubmenuPage("", menu.Page{
		Title:      "Employee Profile",
		Capability: authz.CapManage,
		Slug:       EmployeeProfileSlug,
		Render:     p.Serve,
	})
}

// Serve handles GET /admin/employee-profile?id=N.
func (p *EmployeeProfilePage) Serve(w http.ResponseWriter, r *http.Request) {
	id := normalize.AbsInt(query.Get(r, "id"))

	data := profileData{ShowSalary: true}
	formutil.SetBase(&data.Base, r, p.nav, "Employee Profile", menu.BasePath)

	if id == 0 {
		data.Notice = "No employee selected."
		w.WriteHeader(http.StatusNotFound)
		p.render(w, r, "employee_profile", data)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), p.log, "employee profile")
	defer cancel()

	emp, err := p.employees.GetByID(ctx, id)
	switch {
	case errors.Is(err, employeestore.ErrNotFound):
		data.Notice = "Employee not found."
		w.WriteHeader(http.StatusNotFound)
	case err != nil:
		p.log.Error("employee profile load failed", zap.Error(err), zap.Int64("id", id))
		data.SetError("Could not load employee.")
		w.WriteHeader(http.StatusInternalServerError)
	default:
		fillProfile(&data, emp)
		data.Title = emp.FullName
	}

	p.render(w, r, "employee_profile", data)
}
