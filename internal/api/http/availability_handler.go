package http

import (
	"net/http"
	"strconv"
	"strings"

	"warehouse-backend/internal/service"
)

type AvailabilityHandler struct {
	availability service.AvailabilityService
}

func NewAvailabilityHandler(availability service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// Get answers GET /api/availability?item_ids=1,2&category_id=3&start=...&end=...&quantity=4
func (h *AvailabilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var itemIDs []int32
	if raw := q.Get("item_ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
			if err != nil {
				continue
			}
			itemIDs = append(itemIDs, int32(id))
		}
	}

	report, err := h.availability.GetAvailability(
		r.Context(),
		itemIDs,
		queryInt32(r, "category_id"),
		q.Get("start"),
		q.Get("end"),
		queryInt32(r, "quantity"),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
