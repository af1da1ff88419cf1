package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"aurora-grand/internal/storefront/app/core"
	"aurora-grand/internal/storefront/domain/dto"
	"aurora-grand/internal/storefront/domain/models"
	"aurora-grand/internal/xpkg/logger"
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// CheckoutService runs the order submission workflow: EDITING → SUBMITTING →
// CONFIRMED. Validation failures stay in EDITING; at most one submission is
// in flight at a time; a confirmed workflow cannot be resubmitted until
// Reset opens a fresh session. On confirmation the cart is cleared exactly
// once.
type CheckoutService struct {
	mu           sync.Mutex
	state        models.CheckoutState
	confirmation models.OrderConfirmation

	cart     *CartService
	pricing  Pricing
	gateway  core.IPaymentGateway
	notifier core.INotifier
	mylog    logger.Logger
}

func NewCheckoutService(
	cart *CartService,
	pricing Pricing,
	gateway core.IPaymentGateway,
	notifier core.INotifier,
	mylog logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		state:   models.StateEditing,
		cart:    cart,
		pricing: pricing,
		gateway: gateway,
		mylog:   mylog,

		notifier: notifier,
	}
}

func (cks *CheckoutService) State() models.CheckoutState {
	cks.mu.Lock()
	defer cks.mu.Unlock()
	return cks.state
}

// Confirmation returns the terminal order record, zero until confirmed.
func (cks *CheckoutService) Confirmation() models.OrderConfirmation {
	cks.mu.Lock()
	defer cks.mu.Unlock()
	return cks.confirmation
}

// Submit validates the customer fields against the current cart and, if they
// hold, drives the submission through the payment gateway. A second call
// while one is in flight returns ErrSubmissionInFlight and has no other
// effect. Cancelling ctx discards the in-flight submission: the workflow
// returns to EDITING and the cart is untouched. A gateway failure does the
// same and is retryable.
func (cks *CheckoutService) Submit(ctx context.Context, req dto.CheckoutRequest) (models.OrderConfirmation, error) {
	mylog := cks.mylog.Action("checkout_submit")

	snapshot := cks.cart.Snapshot()

	cks.mu.Lock()
	switch cks.state {
	case models.StateSubmitting:
		cks.mu.Unlock()
		return models.OrderConfirmation{}, core.ErrSubmissionInFlight
	case models.StateConfirmed:
		cks.mu.Unlock()
		return models.OrderConfirmation{}, core.ErrAlreadyConfirmed
	}

	if err := validateCheckout(req, snapshot); err != nil {
		cks.mu.Unlock()
		mylog.Action("validation_failed").Debug("Checkout request rejected")
		return models.OrderConfirmation{}, err
	}
	cks.state = models.StateSubmitting
	cks.mu.Unlock()

	totals := cks.pricing.ComputeTotals(snapshot)
	payload := buildOrderPayload(req, snapshot, totals)

	mylog.Action("submission_started").Info("Submitting order",
		"customer_name", req.CustomerName, "lines", len(snapshot), "total", totals.Total)

	orderID, err := cks.gateway.Process(ctx, payload)
	if err != nil {
		cks.mu.Lock()
		cks.state = models.StateEditing
		cks.mu.Unlock()
		mylog.Action("submission_failed").Error("Order submission did not complete", err)
		return models.OrderConfirmation{}, fmt.Errorf("process order: %w", err)
	}

	confirmation := models.OrderConfirmation{OrderID: orderID, Total: totals.Total}

	cks.mu.Lock()
	cks.state = models.StateConfirmed
	cks.confirmation = confirmation
	cks.mu.Unlock()

	// Single clear per confirmation; the cart stays intact on every failure
	// path above.
	cks.cart.Clear()

	cks.emit(ctx, models.Event{
		Type:    models.EventOrderConfirmed,
		OrderID: confirmation.OrderID,
		Total:   confirmation.Total,
	})

	mylog.Action("submission_completed").Info("Order confirmed",
		"order_id", confirmation.OrderID, "total", confirmation.Total)
	return confirmation, nil
}

// Reset opens a fresh order session: confirmation discarded, back to
// EDITING. Not permitted while a submission is in flight; cancel its context
// instead.
func (cks *CheckoutService) Reset() error {
	cks.mu.Lock()
	defer cks.mu.Unlock()

	if cks.state == models.StateSubmitting {
		return core.ErrSubmissionInFlight
	}
	cks.state = models.StateEditing
	cks.confirmation = models.OrderConfirmation{}
	return nil
}

// validateCheckout applies the submission rules: trimmed non-empty name,
// exactly ten decimal digits of phone, trimmed address longer than eight
// characters, a known payment method, and a non-empty cart.
func validateCheckout(req dto.CheckoutRequest, lines []models.CartLine) error {
	verr := &core.ValidationError{}

	if strings.TrimSpace(req.CustomerName) == "" {
		verr.Add("customer_name", "name is required")
	}
	if !phoneRe.MatchString(req.Phone) {
		verr.Add("phone", fmt.Sprintf("must be exactly %d digits", core.PhoneDigits))
	}
	if len(strings.TrimSpace(req.Address)) <= core.MinAddressLen {
		verr.Add("address", fmt.Sprintf("must be longer than %d characters", core.MinAddressLen))
	}
	switch req.PaymentMethod {
	case "", models.PaymentOnline, models.PaymentCOD:
	default:
		verr.Add("payment_method", "must be ONLINE or COD")
	}
	if len(lines) == 0 {
		verr.Add("lines", core.ErrEmptyCart.Error())
	}

	if verr.Empty() {
		return nil
	}
	return verr
}

func buildOrderPayload(req dto.CheckoutRequest, lines []models.CartLine, totals models.Totals) dto.OrderPayload {
	method := req.PaymentMethod
	if method == "" {
		method = models.PaymentOnline
	}

	items := make([]dto.LineItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, dto.LineItem{ProductID: line.ID, Quantity: line.Qty})
	}

	totalsJSON, _ := json.Marshal(totals)
	return dto.OrderPayload{
		PaymentMethod: strings.ToLower(method),
		Billing: dto.Billing{
			FirstName: req.CustomerName,
			Phone:     req.Phone,
			Address1:  req.Address,
		},
		LineItems: items,
		MetaData: []dto.Meta{
			{Key: "platform", Value: "AuroraGrand-Web"},
			{Key: "totals", Value: string(totalsJSON)},
		},
	}
}

func (cks *CheckoutService) emit(ctx context.Context, event models.Event) {
	if cks.notifier == nil {
		return
	}
	if err := cks.notifier.Notify(ctx, event); err != nil {
		cks.mylog.Action("notify_failed").Error("Failed to publish order event", err)
	}
}
