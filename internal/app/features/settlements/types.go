// internal/app/features/settlements/types.go
package settlements

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/dalemusser/sfshr/internal/app/system/formutil"
	"github.com/dalemusser/sfshr/internal/domain/models"
)

type settlementRow struct {
	ID           int64
	Reference    string
	EmployeeName string
	Type         string
	LastDay      string
	Total        string
	Status       string
	ViewURL      string
}

type statusOption struct {
	Value    string
	Label    string
	Count    int64
	Selected bool
}

type listData struct {
	formutil.Base
	Rows      []settlementRow
	Statuses  []statusOption
	Status    string
	AllCount  int64
	CreateURL string
}

type employeeOption struct {
	ID       int64
	Label    string
	Selected bool
}

type typeOption struct {
	Value    string
	Label    string
	Selected bool
}

type newData struct {
	formutil.Base
	Employees       []employeeOption
	Types           []typeOption
	LastWorkingDay  string
	GratuityAmount  string
	LeaveEncashment string
	Deductions      string
	Notes           string
	ListURL         string
}

type viewData struct {
	formutil.Base
	S         models.Settlement
	TypeLabel string
	LastDay   string
	Gratuity  string
	Leave     string
	Deduction string
	Total     string
	Notes     template.HTML
	Created   string
	ListURL   string
}

func rowFor(s models.Settlement) settlementRow {
	return settlementRow{
		ID:           s.ID,
		Reference:    s.Reference,
		EmployeeName: s.EmployeeName,
		Type:         label(s.Type),
		LastDay:      s.LastWorkingDay.Format(dateLayout),
		Total:        money(s.TotalAmount),
		Status:       label(s.Status),
		ViewURL:      viewURL(s.ID),
	}
}

const dateLayout = "2006-01-02"

// label turns "contract_end" into "Contract End".
func label(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
