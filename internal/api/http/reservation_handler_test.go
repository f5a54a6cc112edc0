package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"warehouse-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(reservations *MockReservationService) http.Handler {
	return NewRouter(new(MockCatalogService), new(MockAvailabilityService), reservations, new(MockRecommendationService))
}

func authedRequest(method, path string, body []byte) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("X-Warehouse-Access", "true")
	req.Header.Set("X-User-ID", "9")
	return req
}

func TestReservationHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newTestRouter(svc)

		svc.On("CreateReservation", mock.Anything, int32(9), int32(1), int32(6), "2024-06-01", "2024-06-03", (*int32)(nil), "gala setup").
			Return(&domain.Reservation{ID: 42, ItemID: 1, Quantity: 6}, nil)

		body, _ := json.Marshal(map[string]interface{}{
			"item_id":    1,
			"quantity":   6,
			"start_date": "2024-06-01",
			"end_date":   "2024-06-03",
			"notes":      "gala setup",
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/reservations", body))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var res domain.Reservation
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, int32(42), res.ID)
		svc.AssertExpectations(t)
	})

	t.Run("MissingAccessHeaderIsForbidden", func(t *testing.T) {
		router := newTestRouter(new(MockReservationService))

		req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader([]byte("{}")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("InsufficientQuantityIsConflict", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newTestRouter(svc)

		svc.On("CreateReservation", mock.Anything, int32(9), int32(1), int32(8), "2024-06-01", "2024-06-03", (*int32)(nil), "").
			Return(nil, domain.ErrInsufficientQuantity)

		body, _ := json.Marshal(map[string]interface{}{
			"item_id": 1, "quantity": 8, "start_date": "2024-06-01", "end_date": "2024-06-03",
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/reservations", body))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("ValidationFailureIsBadRequest", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newTestRouter(svc)

		svc.On("CreateReservation", mock.Anything, int32(9), int32(1), int32(0), "2024-06-01", "2024-06-03", (*int32)(nil), "").
			Return(nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrValidation))

		body, _ := json.Marshal(map[string]interface{}{
			"item_id": 1, "quantity": 0, "start_date": "2024-06-01", "end_date": "2024-06-03",
		})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/reservations", body))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReservationHandler_Get(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newTestRouter(svc)

		svc.On("GetReservation", mock.Anything, int32(404)).Return(nil, domain.ErrNotFound)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/reservations/404", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("OpaqueInternalError", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newTestRouter(svc)

		svc.On("GetReservation", mock.Anything, int32(7)).Return(nil, fmt.Errorf("pq: connection refused"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/reservations/7", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var resp errorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "internal error", resp.Error)
	})
}

func TestReservationHandler_Update(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}

	t.Run("PartialPatchKeepsOmittedFields", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newTestRouter(svc)

		eventID := int32(5)
		existing := &domain.Reservation{
			ID:        7,
			ItemID:    1,
			Quantity:  2,
			StartDate: day("2024-06-01"),
			EndDate:   day("2024-06-03"),
			EventID:   &eventID,
			Notes:     "gala",
		}
		svc.On("GetReservation", mock.Anything, int32(7)).Return(existing, nil)
		// Only quantity is patched; the event link and notes carry over.
		svc.On("UpdateReservation", mock.Anything, int32(7), int32(3), "2024-06-01", "2024-06-03", &eventID, "gala").
			Return(&domain.Reservation{ID: 7, ItemID: 1, Quantity: 3, EventID: &eventID, Notes: "gala"}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/reservations/7", []byte(`{"quantity":3}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("ExplicitEventChangeApplies", func(t *testing.T) {
		svc := new(MockReservationService)
		router := newTestRouter(svc)

		oldEvent := int32(5)
		newEvent := int32(8)
		svc.On("GetReservation", mock.Anything, int32(7)).Return(&domain.Reservation{
			ID: 7, ItemID: 1, Quantity: 2,
			StartDate: day("2024-06-01"), EndDate: day("2024-06-03"),
			EventID: &oldEvent,
		}, nil)
		svc.On("UpdateReservation", mock.Anything, int32(7), int32(2), "2024-06-01", "2024-06-03", &newEvent, "").
			Return(&domain.Reservation{ID: 7, ItemID: 1, Quantity: 2, EventID: &newEvent}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/reservations/7", []byte(`{"event_id":8}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})
}

func TestReservationHandler_ReserveKit(t *testing.T) {
	svc := new(MockReservationService)
	router := newTestRouter(svc)

	kitID := int32(3)
	svc.On("ReserveKit", mock.Anything, int32(9), int32(3), "2024-07-01", "2024-07-05", (*int32)(nil), "").
		Return([]domain.Reservation{
			{ID: 100, ItemID: 1, Quantity: 4, KitID: &kitID, GroupID: "g-1"},
			{ID: 101, ItemID: 2, Quantity: 2, KitID: &kitID, GroupID: "g-1"},
		}, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"start_date": "2024-07-01", "end_date": "2024-07-05",
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/kits/3/reservations", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var legs []domain.Reservation
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&legs))
	assert.Len(t, legs, 2)
	assert.Equal(t, legs[0].GroupID, legs[1].GroupID)
}

func TestReservationHandler_Delete(t *testing.T) {
	svc := new(MockReservationService)
	router := newTestRouter(svc)

	svc.On("DeleteReservation", mock.Anything, int32(7)).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/api/reservations/7", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
