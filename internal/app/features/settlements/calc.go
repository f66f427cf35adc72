// internal/app/features/settlements/calc.go
package settlements

import (
	"math"
	"time"
)

// fullRateAfter is the number of service years paid at half a month's
// salary before each further year is paid at a full month.
const fullRateAfter = 5

// YearsOfService is the service length between hire and lastDay in years,
// rounded to two decimals. It is zero when lastDay is not after hire.
func YearsOfService(hire, lastDay time.Time) float64 {
	if !lastDay.After(hire) {
		return 0
	}
	days := lastDay.Sub(hire).Hours() / 24
	return round2(days / 365.25)
}

// Gratuity is the end-of-service award for a monthly basic salary and
// years of service.
func Gratuity(basic, years float64) float64 {
	if basic <= 0 || years <= 0 {
		return 0
	}
	first := math.Min(years, fullRateAfter)
	rest := math.Max(years-fullRateAfter, 0)
	return round2(basic/2*first + basic*rest)
}

// Total is gratuity plus leave encashment less deductions, never negative.
func Total(gratuity, leave, deductions float64) float64 {
	return round2(math.Max(gratuity+leave-deductions, 0))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
