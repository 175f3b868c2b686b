package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// CreateBooking creates a booking draft. Dates are YYYY-MM-DD; the server
// derives days, cost and deposit.
func (c *Client) CreateBooking(ctx context.Context, equipmentID int, startDate, endDate string) (*models.Booking, error) {
	body := map[string]interface{}{
		"equipment_id": equipmentID,
		"start_date":   startDate,
		"end_date":     endDate,
	}
	var resp struct {
		Message string          `json:"message"`
		Booking *models.Booking `json:"booking"`
	}
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Booking, nil
}

// GetBooking fetches one booking by id.
func (c *Client) GetBooking(ctx context.Context, id int) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", id), nil, nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// MyBookings fetches the current user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, "/my-bookings", nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// EquipmentBookings fetches the bookings against one equipment item.
func (c *Client) EquipmentBookings(ctx context.Context, equipmentID int) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/equipment/%d/bookings", equipmentID), nil, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBookingStatus transitions a booking's status server-side.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int, status models.BookingStatus) error {
	body := map[string]string{"status": string(status)}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/bookings/%d/status", id), nil, body, nil)
}
