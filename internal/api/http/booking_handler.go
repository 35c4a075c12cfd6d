package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"carebook-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// BookingHandler serves booking creation and reads for the authenticated
// participant.
type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	ListingID         int64           `json:"listing_id"`
	ScheduledAt       time.Time       `json:"scheduled_at"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	NDISCoveredAmount decimal.Decimal `json:"ndis_covered_amount"`
	GapPayment        decimal.Decimal `json:"gap_payment"`
	Notes             string          `json:"notes"`
	Category          string          `json:"category"`
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, claim, err := h.bookingSvc.CreateBooking(r.Context(), userID, service.CreateBookingInput{
		ListingID:         req.ListingID,
		ScheduledAt:       req.ScheduledAt,
		TotalPrice:        req.TotalPrice,
		NDISCoveredAmount: req.NDISCoveredAmount,
		GapPayment:        req.GapPayment,
		Notes:             req.Notes,
		Category:          req.Category,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"booking": booking,
		"claim":   claim,
	})
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	page, pageSize := parsePagination(q.Get("page"), q.Get("page_size"))
	bookings, total, err := h.bookingSvc.ListBookings(r.Context(), userID, q.Get("status"), page, pageSize)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"bookings":  bookings,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
