// internal/app/features/profiles/myprofile.go
package profiles

import (
	"errors"
	"net/http"

	employeestore "github.com/dalemusser/sfshr/internal/app/store/employees"
	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/formutil"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MyProfileSlug is the admin page showing the signed-in user's own record.
const MyProfileSlug = "my-profile"

// MyProfilePage shows the employee record linked to the signed-in user.
type MyProfilePage struct {
	employees Employees
	nav       *menu.Registry
	render    RenderFunc
	log       *zap.Logger
}

func NewMyProfilePage(emps Employees, nav *menu.Registry, render RenderFunc, logger *zap.Logger) *MyProfilePage {
	return &MyProfilePage{employees: emps, nav: nav, render: render, log: logger}
}

// Hooks registers the My Profile menu entry under the HR heading.
func (p *MyProfilePage) Hooks(m *menu.Registry) error {
	return m.AddSubmenuPage(menu.HRSlug, menu.Page{
		Title:      "My Profile",
		MenuTitle:  "My Profile",
		Capability: authz.CapRead,
		Slug:       MyProfileSlug,
		Render:     p.Serve,
	})
}

// Serve handles GET /admin/my-profile.
func (p *MyProfilePage) Serve(w http.ResponseWriter, r *http.Request) {
	data := profileData{}
	formutil.SetBase(&data.Base, r, p.nav, "My Profile", menu.BasePath)

	_, uid, _ := authz.UserCtx(r)
	oid, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		data.Notice = "No employee record is linked to your account."
		p.render(w, r, "employee_profile", data)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), p.log, "my profile")
	defer cancel()

	emp, err := p.employees.GetByUserID(ctx, oid)
	switch {
	case errors.Is(err, employeestore.ErrNotFound):
		data.Notice = "No employee record is linked to your account."
	case err != nil:
		p.log.Error("my profile load failed", zap.Error(err), zap.String("user_id", uid))
		data.SetError("Could not load your profile.")
		w.WriteHeader(http.StatusInternalServerError)
	default:
		fillProfile(&data, emp)
	}

	p.render(w, r, "employee_profile", data)
}
