package http

import (
	"net/http"

	"warehouse-backend/internal/domain"
	"warehouse-backend/internal/service"
)

type RecommendationHandler struct {
	recommendations service.RecommendationService
}

func NewRecommendationHandler(recommendations service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.recommendations.GetPurchaseRecommendations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if recs == nil {
		recs = []domain.PurchaseRecommendation{}
	}
	writeJSON(w, http.StatusOK, recs)
}
