package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"safawala-crm-backend/internal/security"
	"safawala-crm-backend/internal/service"
)

// NewRouter wires all handlers under /api/v1. Every API route sits behind
// the auth middleware; /healthz stays open for probes.
func NewRouter(
	tm security.TokenManager,
	availabilitySvc service.AvailabilityService,
	pricingSvc service.PricingService,
	bookingSvc service.BookingService,
	returnsSvc service.ReturnsService,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(tm))

	availability := NewAvailabilityHandler(availabilitySvc)
	api.HandleFunc("/products/{id}/availability", availability.Check).Methods("GET")

	pricing := NewPricingHandler(pricingSvc)
	api.HandleFunc("/pricing/quote", pricing.QuoteLine).Methods("POST")
	api.HandleFunc("/pricing/totals", pricing.QuoteOrder).Methods("POST")

	booking := NewBookingHandler(bookingSvc, returnsSvc)
	api.HandleFunc("/bookings", booking.Create).Methods("POST")
	api.HandleFunc("/bookings", booking.List).Methods("GET")
	api.HandleFunc("/bookings/{id}", booking.Get).Methods("GET")
	api.HandleFunc("/bookings/{id}/cancel", booking.Cancel).Methods("POST")
	api.HandleFunc("/bookings/{id}/returns", booking.ProcessReturn).Methods("POST")
	api.HandleFunc("/lost-damaged/{id}/reverse", booking.ReverseLostDamaged).Methods("POST")

	return r
}
