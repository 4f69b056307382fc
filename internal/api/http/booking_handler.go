package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"safawala-crm-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
	returnsSvc service.ReturnsService
}

func NewBookingHandler(bookingSvc service.BookingService, returnsSvc service.ReturnsService) *BookingHandler {
	return &BookingHandler{
		bookingSvc: bookingSvc,
		returnsSvc: returnsSvc,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	booking, err := h.bookingSvc.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookingSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parseInt32(q.Get("page"), 1)
	pageSize := parseInt32(q.Get("page_size"), 20)

	bookings, total, err := h.bookingSvc.ListByCustomer(r.Context(), q.Get("customer_id"), page, pageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bookings": bookings,
		"total":    total,
	})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.bookingSvc.Cancel(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// ProcessReturn serves POST /bookings/{id}/returns: finalizes the return
// and responds with the deposit settlement.
func (h *BookingHandler) ProcessReturn(w http.ResponseWriter, r *http.Request) {
	var req service.ReturnRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	settlement, err := h.returnsSvc.Process(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settlement)
}

func (h *BookingHandler) ReverseLostDamaged(w http.ResponseWriter, r *http.Request) {
	if err := h.returnsSvc.ReverseLostDamaged(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reversed"})
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n < 1 {
		return fallback
	}
	return int32(n)
}
