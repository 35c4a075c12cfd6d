package http

import (
	"net/http"

	"carebook-backend/internal/service"
)

// ClaimHandler serves the authenticated participant's reimbursement claims.
type ClaimHandler struct {
	claimSvc service.ClaimService
}

func NewClaimHandler(claimSvc service.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimSvc: claimSvc}
}

func (h *ClaimHandler) ListClaims(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	page, pageSize := parsePagination(q.Get("page"), q.Get("page_size"))
	claims, total, err := h.claimSvc.ListClaims(r.Context(), userID, q.Get("status"), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"claims":    claims,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
