package http

import (
	"net/http"

	"warehouse-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires the engine's operations onto the host's HTTP surface.
func NewRouter(
	catalog service.CatalogService,
	availability service.AvailabilityService,
	reservations service.ReservationService,
	recommendations service.RecommendationService,
) *mux.Router {
	catalogHandler := NewCatalogHandler(catalog)
	availabilityHandler := NewAvailabilityHandler(availability)
	reservationHandler := NewReservationHandler(reservations)
	recommendationHandler := NewRecommendationHandler(recommendations)

	r := mux.NewRouter()
	r.Use(RequestID)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(WarehouseAccess)

	api.HandleFunc("/availability", availabilityHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/reservations", reservationHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/reservations", reservationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{id:[0-9]+}", reservationHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/kits/{id:[0-9]+}/reservations", reservationHandler.ReserveKit).Methods(http.MethodPost)

	api.HandleFunc("/items", catalogHandler.CreateItem).Methods(http.MethodPost)
	api.HandleFunc("/items", catalogHandler.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/items/{id:[0-9]+}", catalogHandler.GetItem).Methods(http.MethodGet)
	api.HandleFunc("/items/{id:[0-9]+}", catalogHandler.UpdateItem).Methods(http.MethodPut)
	api.HandleFunc("/items/{id:[0-9]+}", catalogHandler.DeleteItem).Methods(http.MethodDelete)

	api.HandleFunc("/categories", catalogHandler.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories", catalogHandler.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id:[0-9]+}", catalogHandler.UpdateCategory).Methods(http.MethodPut)
	api.HandleFunc("/categories/{id:[0-9]+}", catalogHandler.DeleteCategory).Methods(http.MethodDelete)

	api.HandleFunc("/kits", catalogHandler.CreateKit).Methods(http.MethodPost)
	api.HandleFunc("/kits", catalogHandler.ListKits).Methods(http.MethodGet)
	api.HandleFunc("/kits/{id:[0-9]+}", catalogHandler.GetKit).Methods(http.MethodGet)
	api.HandleFunc("/kits/{id:[0-9]+}", catalogHandler.UpdateKit).Methods(http.MethodPut)
	api.HandleFunc("/kits/{id:[0-9]+}", catalogHandler.DeleteKit).Methods(http.MethodDelete)

	api.HandleFunc("/recommendations", recommendationHandler.List).Methods(http.MethodGet)

	return r
}
