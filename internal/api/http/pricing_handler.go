package http

import (
	"net/http"

	"safawala-crm-backend/internal/service"
)

type PricingHandler struct {
	pricingSvc service.PricingService
}

func NewPricingHandler(pricingSvc service.PricingService) *PricingHandler {
	return &PricingHandler{pricingSvc: pricingSvc}
}

// QuoteLine serves POST /pricing/quote: one line's price breakdown.
func (h *PricingHandler) QuoteLine(w http.ResponseWriter, r *http.Request) {
	var req service.LineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	quote, err := h.pricingSvc.QuoteLine(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

// QuoteOrder serves POST /pricing/totals: full staged order totals.
func (h *PricingHandler) QuoteOrder(w http.ResponseWriter, r *http.Request) {
	var req service.TotalsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	quote, err := h.pricingSvc.QuoteOrder(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}
