package settlements

import (
	"testing"
	"time"
)

func TestYearsOfService(t *testing.T) {
	hire := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		last time.Time
		want float64
	}{
		{"same day", hire, 0},
		{"before hire", hire.AddDate(-1, 0, 0), 0},
		{"ten years", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 10},
		{"half year", time.Date(2016, 7, 2, 0, 0, 0, 0, time.UTC), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YearsOfService(hire, tt.last); got != tt.want {
				t.Errorf("YearsOfService = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGratuity(t *testing.T) {
	tests := []struct {
		basic, years, want float64
	}{
		{10000, 0, 0},
		{0, 10, 0},
		{10000, 1, 5000},
		{10000, 5, 25000},
		{10000, 6, 35000},
		{10000, 10, 75000},
		{10000, 2.5, 12500},
	}
	for _, tt := range tests {
		if got := Gratuity(tt.basic, tt.years); got != tt.want {
			t.Errorf("Gratuity(%v, %v) = %v, want %v", tt.basic, tt.years, got, tt.want)
		}
	}
}

func TestTotal(t *testing.T) {
	if got := Total(1000, 250.5, 100); got != 1150.5 {
		t.Errorf("Total = %v, want 1150.5", got)
	}
	if got := Total(100, 0, 500); got != 0 {
		t.Errorf("Total = %v, want 0 when deductions exceed the award", got)
	}
}

func TestLabel(t *testing.T) {
	if got := label("contract_end"); got != "Contract End" {
		t.Errorf("label = %q", got)
	}
	if got := label(""); got != "" {
		t.Errorf("label(\"\") = %q", got)
	}
}
