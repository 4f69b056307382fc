package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"safawala-crm-backend/internal/engine"
	"safawala-crm-backend/internal/service"
)

type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
}

func NewAvailabilityHandler(availabilitySvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc}
}

// Check serves GET /products/{id}/availability. delivery_date and
// return_date are YYYY-MM-DD; quantity defaults to 1.
func (h *AvailabilityHandler) Check(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	q := r.URL.Query()

	deliveryDate, err := parseDate(q.Get("delivery_date"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	returnDate, err := parseDate(q.Get("return_date"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	quantity := 1
	if s := q.Get("quantity"); s != "" {
		quantity, err = strconv.Atoi(s)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid quantity %q", engine.ErrValidation, s))
			return
		}
	}

	report, err := h.availabilitySvc.Check(r.Context(), productID, deliveryDate, returnDate, quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: missing date parameter", engine.ErrValidation)
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD", engine.ErrValidation, s)
	}
	return t, nil
}
