package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"aurora-grand/internal/storefront/app/core"
	"aurora-grand/internal/storefront/app/services"
	"aurora-grand/internal/storefront/domain/dto"
	"aurora-grand/internal/xpkg/logger"
)

type CheckoutHandler struct {
	checkout *services.CheckoutService
	mylog    logger.Logger
}

func NewCheckoutHandler(checkout *services.CheckoutService, mylog logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		mylog:    mylog,
	}
}

// Submit runs the order submission workflow. Validation failures come back
// as 400 with per-field reasons; a duplicate attempt while one is in flight
// is a 409 with no further effect.
func (ckh *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			ckh.mylog.Action("parse_failed").Error("Failed to parse checkout request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), core.WaitTime*time.Second)
		defer cancel()

		confirmation, err := ckh.checkout.Submit(ctx, req)
		if err != nil {
			var verr *core.ValidationError
			switch {
			case errors.As(err, &verr):
				jsonError(w, http.StatusBadRequest, err)
			case errors.Is(err, core.ErrSubmissionInFlight), errors.Is(err, core.ErrAlreadyConfirmed):
				jsonError(w, http.StatusConflict, err)
			default:
				jsonError(w, http.StatusBadGateway, errors.New("order submission failed, try again"))
			}
			return
		}

		jsonResponse(w, http.StatusOK, dto.CheckoutResponse{
			OrderID: confirmation.OrderID,
			Total:   confirmation.Total,
		})
		ckh.mylog.Action("order_placed").Info("Order placed", "order_id", confirmation.OrderID, "total", confirmation.Total)
	}
}

// Reset opens a fresh order session.
func (ckh *CheckoutHandler) Reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ckh.checkout.Reset(); err != nil {
			jsonError(w, http.StatusConflict, err)
			return
		}
		jsonResponse(w, http.StatusOK, map[string]string{"state": string(ckh.checkout.State())})
	}
}
