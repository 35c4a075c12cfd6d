package http

import (
	"net/http"
	"strconv"

	"carebook-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// ListingHandler serves the browse and detail screens.
type ListingHandler struct {
	listingSvc service.ListingService
}

func NewListingHandler(listingSvc service.ListingService) *ListingHandler {
	return &ListingHandler{listingSvc: listingSvc}
}

func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	listing, err := h.listingSvc.GetListing(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")

	maxRate := decimal.Zero
	if raw := q.Get("max_rate"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			respondError(w, http.StatusBadRequest, "invalid max_rate")
			return
		}
		maxRate = parsed
	}

	page, pageSize := parsePagination(q.Get("page"), q.Get("page_size"))
	listings, total, err := h.listingSvc.ListListings(r.Context(), category, maxRate, page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"listings":  listings,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func parsePagination(pageStr, sizeStr string) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if v, err := strconv.Atoi(pageStr); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(sizeStr); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
