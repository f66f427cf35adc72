// internal/app/system/limits/limits.go
package limits

// Request body size limits for form posts.
const (
	// MaxSettlementFormSize bounds the settlement create form, notes included.
	MaxSettlementFormSize = 64 << 10 // 64 KB

	// MaxLoginFormSize bounds the sign-in form.
	MaxLoginFormSize = 8 << 10 // 8 KB
)
