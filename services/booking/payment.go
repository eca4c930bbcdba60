package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"palmera/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// --- Interfaces ---
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// --- PaymentHandler Implementation ---
type UnifiedPaymentHandler struct {
	logger   *zap.Logger
	currency string
}

// NewPaymentHandler builds the production payment handler. Card payments
// go through Stripe payment intents; cash payments are recorded for
// settlement at the front desk.
func NewPaymentHandler(logger *zap.Logger, currency string) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{
		logger:   logger,
		currency: currency,
	}
}

// ProcessPayment validates the request and dispatches on method.
func (h *UnifiedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}
	if req.Currency == "" {
		req.Currency = h.currency
	}

	inv := &models.Invoice{
		InvoiceID:     uuid.New().String(),
		ReservationID: req.ReservationID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Method:        req.Method,
		Status:        "pending",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, req, inv)
	case "cash":
		return h.processCashPayment(req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

// --- Card Payment Processing ---
func (h *UnifiedPaymentHandler) processCardPayment(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(toMinorUnits(req.Amount)),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.GuestEmail != "" {
		params.ReceiptEmail = stripe.String(req.GuestEmail)
	}
	if req.Idempotency != "" {
		params.SetIdempotencyKey(req.Idempotency)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.AddMetadata("reservationId", req.ReservationID)

	pi, err := paymentintent.New(params)
	if err != nil {
		inv.Status = "failed"
		inv.Error = err.Error()
		h.logger.Error("Card payment failed", zap.String("invoice", inv.InvoiceID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	inv.PaymentIntentID = pi.ID
	inv.ClientSecret = pi.ClientSecret
	if pi.Status == stripe.PaymentIntentStatusSucceeded {
		inv.Status = "paid"
	}
	inv.UpdatedAt = time.Now()

	h.logger.Info("Card payment intent created",
		zap.String("invoice", inv.InvoiceID), zap.String("paymentIntent", pi.ID))
	return inv, nil
}

// --- Cash Payment Processing ---
func (h *UnifiedPaymentHandler) processCashPayment(req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	// Cash payment remains "pending" until settled at the front desk.
	inv.UpdatedAt = time.Now()

	h.logger.Info("Cash payment recorded", zap.String("invoice", inv.InvoiceID),
		zap.Float64("amount", req.Amount))
	return inv, nil
}

// toMinorUnits converts a currency amount to the smallest unit Stripe expects.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// --- Validator ---
func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.ReservationID == "" {
		return errors.New("missing reservation ID")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
