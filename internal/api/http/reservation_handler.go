package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"warehouse-backend/internal/domain"
	"warehouse-backend/internal/service"

	"github.com/gorilla/mux"
)

type ReservationHandler struct {
	reservations service.ReservationService
}

func NewReservationHandler(reservations service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

type createReservationRequest struct {
	ItemID    int32  `json:"item_id"`
	Quantity  int32  `json:"quantity"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	EventID   *int32 `json:"event_id,omitempty"`
	Notes     string `json:"notes"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	res, err := h.reservations.CreateReservation(r.Context(), callerID(r.Context()), req.ItemID, req.Quantity, req.StartDate, req.EndDate, req.EventID, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

type reserveKitRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	EventID   *int32 `json:"event_id,omitempty"`
	Notes     string `json:"notes"`
}

func (h *ReservationHandler) ReserveKit(w http.ResponseWriter, r *http.Request) {
	kitID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req reserveKitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	legs, err := h.reservations.ReserveKit(r.Context(), callerID(r.Context()), kitID, req.StartDate, req.EndDate, req.EventID, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, legs)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := h.reservations.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type updateReservationRequest struct {
	Quantity  *int32  `json:"quantity,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	EventID   *int32  `json:"event_id,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// Update merges the patch over the stored row: omitted fields keep their
// current values, so a quantity-only patch never drops the event link or
// the notes. Clearing the event link takes an explicit event_id update.
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	existing, err := h.reservations.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	quantity := existing.Quantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	startDate := existing.StartDate.Format("2006-01-02")
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	endDate := existing.EndDate.Format("2006-01-02")
	if req.EndDate != nil {
		endDate = *req.EndDate
	}
	eventID := existing.EventID
	if req.EventID != nil {
		eventID = req.EventID
	}
	notes := existing.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	res, err := h.reservations.UpdateReservation(r.Context(), id, quantity, startDate, endDate, eventID, notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.reservations.DeleteReservation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ReservationFilter{
		ItemID:  queryInt32(r, "item_id"),
		EventID: queryInt32(r, "event_id"),
		KitID:   queryInt32(r, "kit_id"),
	}
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr != "" && endStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			writeError(w, fmt.Errorf("%w: invalid start date %q", domain.ErrValidation, startStr))
			return
		}
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			writeError(w, fmt.Errorf("%w: invalid end date %q", domain.ErrValidation, endStr))
			return
		}
		filter.Start = start
		filter.End = end
	}

	out, err := h.reservations.ListReservations(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Reservation{}
	}
	writeJSON(w, http.StatusOK, out)
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, raw)
	}
	return int32(id), nil
}

func queryInt32(r *http.Request, name string) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0
	}
	return int32(id)
}
