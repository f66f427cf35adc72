// internal/domain/models/shiftswap.go
package models

import "time"

// Shift swap statuses. A swap starts pending on the colleague, moves to
// manager_pending once the colleague accepts, and ends approved, rejected
// or cancelled.
const (
	SwapPending        = "pending"
	SwapManagerPending = "manager_pending"
	SwapApproved       = "approved"
	SwapRejected       = "rejected"
	SwapCancelled      = "cancelled"
)

// ShiftSwap is a request by one employee to exchange a shift with another.
// It is exposed read-only over REST, so it carries JSON tags.
type ShiftSwap struct {
	ID                 int64     `bson:"_id" json:"id"`
	RequesterID        int64     `bson:"requester_id" json:"requester_id"`
	RequesterName      string    `bson:"requester_name" json:"requester_name"`
	RequesterShiftDate string    `bson:"requester_shift_date" json:"requester_shift_date"`
	TargetID           int64     `bson:"target_id" json:"target_id"`
	TargetName         string    `bson:"target_name" json:"target_name"`
	TargetShiftDate    string    `bson:"target_shift_date" json:"target_shift_date"`
	Reason             string    `bson:"reason" json:"reason"`
	Status             string    `bson:"status" json:"status"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}
