package http

import (
	"net/http"

	"carebook-backend/internal/security"
	"carebook-backend/internal/service"

	"github.com/gorilla/mux"
)

// Handlers groups the HTTP handlers registered on the router.
type Handlers struct {
	Auth    *AuthHandler
	Listing *ListingHandler
	Booking *BookingHandler
	Wallet  *WalletHandler
	Claim   *ClaimHandler
}

// NewRouter wires all routes. Listing browse and detail are public; wallet,
// booking and claim routes require a Bearer access token.
func NewRouter(h Handlers, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware())

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods("POST")

	api.HandleFunc("/listings", h.Listing.ListListings).Methods("GET")
	api.HandleFunc("/listings/{id:[0-9]+}", h.Listing.GetListing).Methods("GET")

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))
	authed.HandleFunc("/wallet", h.Wallet.GetWallet).Methods("GET")
	authed.HandleFunc("/bookings", h.Booking.CreateBooking).Methods("POST")
	authed.HandleFunc("/bookings", h.Booking.ListBookings).Methods("GET")
	authed.HandleFunc("/bookings/{id:[0-9]+}", h.Booking.GetBooking).Methods("GET")
	authed.HandleFunc("/claims", h.Claim.ListClaims).Methods("GET")

	return r
}

// NewHandlers builds the handler set from the service layer.
func NewHandlers(
	authSvc service.AuthService,
	listingSvc service.ListingService,
	bookingSvc service.BookingService,
	walletSvc service.WalletService,
	claimSvc service.ClaimService,
) Handlers {
	return Handlers{
		Auth:    NewAuthHandler(authSvc),
		Listing: NewListingHandler(listingSvc),
		Booking: NewBookingHandler(bookingSvc),
		Wallet:  NewWalletHandler(walletSvc),
		Claim:   NewClaimHandler(claimSvc),
	}
}
