// internal/domain/models/employee.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is an HR employee record. UserID links the record to a login
// and is nil for employees without an account.
type Employee struct {
	ID          int64               `bson:"_id"`
	UserID      *primitive.ObjectID `bson:"user_id,omitempty"`
	Code        string              `bson:"code"`
	FullName    string              `bson:"full_name"`
	FullNameCI  string              `bson:"full_name_ci"` // ← always stored
	Email       string              `bson:"email"`
	Department  string              `bson:"department"`
	Position    string              `bson:"position"`
	HireDate    *time.Time          `bson:"hire_date,omitempty"`
	BasicSalary float64             `bson:"basic_salary"`
	Status      string              `bson:"status"`
	CreatedAt   time.Time           `bson:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at"`
}
