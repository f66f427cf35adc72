// internal/app/features/profiles/types.go
package profiles

import (
	"strconv"

	"github.com/dalemusser/sfshr/internal/app/system/formutil"
	"github.com/dalemusser/sfshr/internal/domain/models"
)

type profileData struct {
	formutil.Base
	Found      bool
	Code       string
	FullName   string
	Email      string
	Department string
	Position   string
	HireDate   string
	Salary     string
	Status     string
	ShowSalary bool
}

func fillProfile(d *profileData, e models.Employee) {
	d.Found = true
	d.Code = e.Code
	d.FullName = e.FullName
	d.Email = e.Email
	d.Department = e.Department
	d.Position = e.Position
	d.Status = e.Status
	d.Salary = strconv.FormatFloat(e.BasicSalary, 'f', 2, 64)
	if e.HireDate != nil {
		d.HireDate = e.HireDate.Format("2006-01-02")
	}
}
