// internal/app/features/settlements/new.go
package settlements

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	employeestore "github.com/dalemusser/sfshr/internal/app/store/employees"
	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/formutil"
	"github.com/dalemusser/sfshr/internal/app/system/htmlsanitize"
	"github.com/dalemusser/sfshr/internal/app/system/limits"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/normalize"
	"github.com/dalemusser/sfshr/internal/app/system/timeouts"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"go.uber.org/zap"
)

// notesMax bounds the sanitized notes length.
const notesMax = 4000

// createForm is the posted new-settlement form.
type createForm struct {
	EmployeeID      int64
	Type            string
	LastWorkingDay  string
	GratuityAmount  string
	LeaveEncashment string
	Deductions      string
	Notes           string
}

func readCreateForm(r *http.Request) createForm {
	id, _ := strconv.ParseInt(strings.TrimSpace(r.FormValue("employee_id")), 10, 64)
	return createForm{
		EmployeeID:      id,
		Type:            normalize.Key(r.FormValue("type")),
		LastWorkingDay:  strings.TrimSpace(r.FormValue("last_working_day")),
		GratuityAmount:  strings.TrimSpace(r.FormValue("gratuity_amount")),
		LeaveEncashment: strings.TrimSpace(r.FormValue("leave_encashment")),
		Deductions:      strings.TrimSpace(r.FormValue("deductions")),
		Notes:           strings.TrimSpace(r.FormValue("notes")),
	}
}

// ServeNew renders the new settlement form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderNew(w, r, createForm{Type: models.SettlementResignation}, "")
}

func (h *Handler) renderNew(w http.ResponseWriter, r *http.Request, f createForm, errMsg string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "settlement form employees")
	defer cancel()

	data := newData{
		LastWorkingDay:  f.LastWorkingDay,
		GratuityAmount:  f.GratuityAmount,
		LeaveEncashment: f.LeaveEncashment,
		Deductions:      f.Deductions,
		Notes:           f.Notes,
		ListURL:         menu.URL(PageSlug),
	}
	formutil.SetBase(&data.Base, r, h.Menu, "New Settlement", menu.URL(PageSlug))
	if errMsg != "" {
		data.SetError(errMsg)
	}

	emps, err := h.Employees.List(ctx)
	if err != nil {
		h.Log.Error("employee list failed", zap.Error(err))
		if errMsg == "" {
			data.SetError("Could not load employees.")
		}
	}
	for _, e := range emps {
		lbl := e.FullName
		if e.Code != "" {
			lbl = e.Code + " · " + e.FullName
		}
		data.Employees = append(data.Employees, employeeOption{ID: e.ID, Label: lbl, Selected: e.ID == f.EmployeeID})
	}
	for _, t := range models.SettlementTypes {
		data.Types = append(data.Types, typeOption{Value: t, Label: label(t), Selected: t == f.Type})
	}

	h.render(w, r, "settlement_new", data)
}

// HandleCreate validates and stores a new settlement, then redirects to
// its view. Gratuity left blank is computed from the employee's salary
// and service.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxSettlementFormSize)
	if err := r.ParseForm(); err != nil {
		h.renderNew(w, r, createForm{}, "Invalid form submission.")
		return
	}
	f := readCreateForm(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "settlement create")
	defer cancel()

	s, msg := h.buildSettlement(ctx, r, f)
	if msg != "" {
		h.renderNew(w, r, f, msg)
		return
	}

	created, err := h.Store.Create(ctx, s)
	if err != nil {
		h.Log.Error("settlement create failed", zap.Error(err), zap.Int64("employee_id", f.EmployeeID))
		h.renderNew(w, r, f, "Database error while creating settlement.")
		return
	}
	h.Log.Info("settlement created",
		zap.Int64("id", created.ID),
		zap.String("reference", created.Reference),
		zap.Int64("employee_id", created.EmployeeID))

	http.Redirect(w, r, viewURL(created.ID), http.StatusSeeOther)
}

// buildSettlement returns the settlement to store, or a message for the
// user when the form is invalid.
func (h *Handler) buildSettlement(ctx context.Context, r *http.Request, f createForm) (models.Settlement, string) {
	if f.EmployeeID <= 0 {
		return models.Settlement{}, "Employee is required."
	}
	if !slices.Contains(models.SettlementTypes, f.Type) {
		return models.Settlement{}, "Please select a settlement type."
	}
	lastDay, err := time.Parse(dateLayout, f.LastWorkingDay)
	if err != nil {
		return models.Settlement{}, "Last working day must be a date (YYYY-MM-DD)."
	}

	emp, err := h.Employees.GetByID(ctx, f.EmployeeID)
	if errors.Is(err, employeestore.ErrNotFound) {
		return models.Settlement{}, "Employee not found."
	}
	if err != nil {
		h.Log.Error("employee load failed", zap.Error(err), zap.Int64("employee_id", f.EmployeeID))
		return models.Settlement{}, "Database error while loading employee."
	}

	var years float64
	if emp.HireDate != nil {
		if lastDay.Before(*emp.HireDate) {
			return models.Settlement{}, "Last working day is before the hire date."
		}
		years = YearsOfService(*emp.HireDate, lastDay)
	}

	gratuity, given, err := normalize.Amount(f.GratuityAmount)
	if err != nil || gratuity < 0 {
		return models.Settlement{}, "Gratuity must be a non-negative amount."
	}
	if !given {
		gratuity = Gratuity(emp.BasicSalary, years)
	}
	leave, _, err := normalize.Amount(f.LeaveEncashment)
	if err != nil || leave < 0 {
		return models.Settlement{}, "Leave encashment must be a non-negative amount."
	}
	deductions, _, err := normalize.Amount(f.Deductions)
	if err != nil || deductions < 0 {
		return models.Settlement{}, "Deductions must be a non-negative amount."
	}

	notes := htmlsanitize.Sanitize(f.Notes)
	if len(notes) > notesMax {
		return models.Settlement{}, "Notes are too long."
	}

	_, uid, _ := authz.UserCtx(r)
	return models.Settlement{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		Type:            f.Type,
		LastWorkingDay:  lastDay,
		YearsOfService:  years,
		BasicSalary:     emp.BasicSalary,
		GratuityAmount:  gratuity,
		LeaveEncashment: leave,
		Deductions:      deductions,
		TotalAmount:     Total(gratuity, leave, deductions),
		Status:          models.SettlementPending,
		Notes:           notes,
		CreatedBy:       uid,
	}, ""
}
