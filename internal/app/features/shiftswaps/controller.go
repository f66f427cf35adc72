// internal/app/features/shiftswaps/controller.go
package shiftswaps

import (
	"context"
	"net/http"

	"github.com/dalemusser/sfshr/internal/app/system/authz"
	"github.com/dalemusser/sfshr/internal/app/system/modules"
	"github.com/dalemusser/sfshr/internal/app/system/rest"
	"github.com/dalemusser/sfshr/internal/app/system/timeouts"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"go.uber.org/zap"
)

// Service supplies the swap data. The store implements it.
type Service interface {
	PendingForManagers(ctx context.Context) ([]models.ShiftSwap, error)
	PendingCount(ctx context.Context) (int64, error)
}

// Controller owns the read-only shift swap REST endpoints.
type Controller struct {
	Service Service
	Log     *zap.Logger
}

// NewController constructs a shift swap Controller.
func NewController(svc Service, logger *zap.Logger) *Controller {
	return &Controller{Service: svc, Log: logger}
}

// countResponse is the body of GET /shift-swaps/pending-count.
type countResponse struct {
	Count int64 `json:"count"`
}

func (c *Controller) Name() string    { return "shift-swaps" }
func (c *Controller) AdminOnly() bool { return false }

// Init registers the controller's routes.
func (c *Controller) Init(h modules.Hooks) error {
	return c.RegisterRoutes(h.REST)
}

// RegisterRoutes registers
//
//	GET /shift-swaps
//	GET /shift-swaps/pending-count
//
// both gated by CheckManagerPermission.
func (c *Controller) RegisterRoutes(s *rest.Server) error {
	if err := s.RegisterRoute("/shift-swaps", rest.Route{
		Method:             http.MethodGet,
		Callback:           c.GetSwaps,
		PermissionCallback: CheckManagerPermission,
	}); err != nil {
		return err
	}
	return s.RegisterRoute("/shift-swaps/pending-count", rest.Route{
		Method:             http.MethodGet,
		Callback:           c.GetPendingCount,
		PermissionCallback: CheckManagerPermission,
	})
}

// CheckManagerPermission is true iff the caller holds manage or
// attendance_admin.
func CheckManagerPermission(r *http.Request) bool {
	return authz.CanAny(r, authz.CapManage, authz.CapAttendanceAdmin)
}

// GetSwaps returns the swaps awaiting a manager, exactly as the service
// returns them.
func (c *Controller) GetSwaps(r *http.Request) (rest.Response, error) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), c.Log, "shift swaps pending for managers")
	defer cancel()

	swaps, err := c.Service.PendingForManagers(ctx)
	if err != nil {
		return rest.Response{}, err
	}
	return rest.OK(swaps), nil
}

// GetPendingCount returns {"count": n}.
func (c *Controller) GetPendingCount(r *http.Request) (rest.Response, error) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), c.Log, "shift swaps pending count")
	defer cancel()

	n, err := c.Service.PendingCount(ctx)
	if err != nil {
		return rest.Response{}, err
	}
	return rest.OK(countResponse{Count: n}), nil
}
