// internal/domain/models/settlement.go
package models

import "time"

// Settlement types.
const (
	SettlementResignation = "resignation"
	SettlementTermination = "termination"
	SettlementContractEnd = "contract_end"
	SettlementRetirement  = "retirement"
)

// SettlementTypes lists the accepted settlement types in display order.
var SettlementTypes = []string{
	SettlementResignation,
	SettlementTermination,
	SettlementContractEnd,
	SettlementRetirement,
}

// Settlement statuses.
const (
	SettlementPending  = "pending"
	SettlementApproved = "approved"
	SettlementRejected = "rejected"
	SettlementPaid     = "paid"
)

// SettlementStatuses lists the accepted statuses in display order.
var SettlementStatuses = []string{
	SettlementPending,
	SettlementApproved,
	SettlementRejected,
	SettlementPaid,
}

// Settlement is an end-of-service settlement for one employee.
type Settlement struct {
	ID              int64     `bson:"_id"`
	Reference       string    `bson:"reference"`
	EmployeeID      int64     `bson:"employee_id"`
	EmployeeName    string    `bson:"employee_name"`
	Type            string    `bson:"type"`
	LastWorkingDay  time.Time `bson:"last_working_day"`
	YearsOfService  float64   `bson:"years_of_service"`
	BasicSalary     float64   `bson:"basic_salary"`
	GratuityAmount  float64   `bson:"gratuity_amount"`
	LeaveEncashment float64   `bson:"leave_encashment"`
	Deductions      float64   `bson:"deductions"`
	TotalAmount     float64   `bson:"total_amount"`
	Status          string    `bson:"status"`
	Notes           string    `bson:"notes"`
	CreatedBy       string    `bson:"created_by"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}
