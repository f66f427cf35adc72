// internal/app/features/settlements/list.go
package settlements

import (
	"net/http"
	"slices"

	settlementstore "github.com/dalemusser/sfshr/internal/app/store/settlements"
	"github.com/dalemusser/sfshr/internal/app/system/formutil"
	"github.com/dalemusser/sfshr/internal/app/system/menu"
	"github.com/dalemusser/sfshr/internal/app/system/normalize"
	"github.com/dalemusser/sfshr/internal/app/system/timeouts"
	"github.com/dalemusser/sfshr/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// listLimit caps the rows shown on the list screen.
const listLimit = 200

// ServeList renders every settlement, newest first, optionally filtered by
// ?status=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, "")
}

func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, notice string) {
	status := normalize.Key(query.Get(r, "status"))
	if !slices.Contains(models.SettlementStatuses, status) {
		status = ""
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "settlements list")
	defer cancel()

	data := listData{Status: status, CreateURL: menu.URL(PageSlug) + "?action=create"}
	formutil.SetBase(&data.Base, r, h.Menu, "Settlements", menu.BasePath)
	data.Notice = notice

	list, err := h.Store.List(ctx, settlementstore.ListFilter{Status: status, Limit: listLimit})
	if err != nil {
		h.Log.Error("settlements list failed", zap.Error(err), zap.String("path", r.URL.Path))
		data.SetError("Could not load settlements.")
		h.render(w, r, "settlement_list", data)
		return
	}
	counts, err := h.Store.CountByStatus(ctx)
	if err != nil {
		h.Log.Warn("settlements count failed", zap.Error(err))
		counts = map[string]int64{}
	}

	data.Rows = make([]settlementRow, 0, len(list))
	for _, s := range list {
		data.Rows = append(data.Rows, rowFor(s))
	}
	for _, st := range models.SettlementStatuses {
		data.AllCount += counts[st]
		data.Statuses = append(data.Statuses, statusOption{
			Value:    st,
			Label:    label(st),
			Count:    counts[st],
			Selected: st == status,
		})
	}

	h.render(w, r, "settlement_list", data)
}
