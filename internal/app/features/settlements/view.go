// internal/app/features/settlements/view.go
package settlements

import (
	"errors"
	"net/http"

	settlementstore "github.com/dalemusser/sfshr/internal/app/store/settlements"
	"github.com/dalemusser/sfshr/internal/app/system/formutil"
	"github.com/dalemusser/sfshr/internal/app/system/htmlsanitize"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeView renders one settlement read-only. An unknown id falls back to
// the list with a notice.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request, id int64) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "settlement view")
	defer cancel()

	s, err := h.Store.GetByID(ctx, id)
	if errors.Is(err, settlementstore.ErrNotFound) {
		h.renderList(w, r, "Settlement #"+itoa(id)+" was not found.")
		return
	}
	if err != nil {
		h.Log.Error("settlement load failed", zap.Error(err), zap.Int64("id", id))
		h.renderList(w, r, "Could not load settlement #"+itoa(id)+".")
		return
	}

	data := viewData{
		S:         s,
		TypeLabel: label(s.Type),
		LastDay:   s.LastWorkingDay.Format(dateLayout),
		Gratuity:  money(s.GratuityAmount),
		Leave:     money(s.LeaveEncashment),
		Deduction: money(s.Deductions),
		Total:     money(s.TotalAmount),
		Notes:     htmlsanitize.HTML(s.Notes),
		Created:   s.CreatedAt.Format("2006-01-02 15:04"),
		ListURL:   menu.URL(PageSlug),
	}
	formutil.SetBase(&data.Base, r, h.Menu, "Settlement "+s.Reference, menu.URL(PageSlug))

	h.render(w, r, "settlement_view", data)
}
