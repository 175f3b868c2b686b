package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// CreatePaymentIntent starts payment for a booking draft.
func (c *Client) CreatePaymentIntent(ctx context.Context, bookingID int) (*models.PaymentIntent, error) {
	body := map[string]int{"booking_id": bookingID}
	var intent models.PaymentIntent
	if err := c.do(ctx, http.MethodPost, "/create-payment-intent", nil, body, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// ConfirmPayment reconciles a completed payment widget flow with the server.
func (c *Client) ConfirmPayment(ctx context.Context, paymentIntentID string) error {
	body := map[string]string{"payment_intent_id": paymentIntentID}
	return c.do(ctx, http.MethodPost, "/confirm-payment", nil, body, nil)
}

// RefundDeposit requests the deposit refund after equipment return.
func (c *Client) RefundDeposit(ctx context.Context, bookingID int) error {
	body := map[string]int{"booking_id": bookingID}
	return c.do(ctx, http.MethodPost, "/refund-deposit", nil, body, nil)
}

// BookingPayments lists the payments recorded against a booking.
func (c *Client) BookingPayments(ctx context.Context, bookingID int) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d/payments", bookingID), nil, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
