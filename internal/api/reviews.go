package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// ReviewPayload is the create payload for a completed-booking review.
type ReviewPayload struct {
	EquipmentRating int    `json:"equipment_rating"`
	OwnerRating     int    `json:"owner_rating"`
	EquipmentReview string `json:"equipment_review,omitempty"`
	OwnerReview     string `json:"owner_review,omitempty"`
}

// CreateReview submits a review for a completed booking.
func (c *Client) CreateReview(ctx context.Context, bookingID int, payload ReviewPayload) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%d/review", bookingID), nil, payload, nil)
}

// EquipmentReviews lists the reviews for one equipment item.
func (c *Client) EquipmentReviews(ctx context.Context, equipmentID int) ([]models.Review, error) {
	var resp struct {
		Reviews []models.Review `json:"reviews"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/equipment/%d/reviews", equipmentID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

// UserReviews lists the reviews received by one user as an owner.
func (c *Client) UserReviews(ctx context.Context, userID int) ([]models.Review, error) {
	var resp struct {
		Reviews []models.Review `json:"reviews"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/reviews", userID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

// MyReviews lists the reviews written by the current user.
func (c *Client) MyReviews(ctx context.Context) ([]models.Review, error) {
	var resp struct {
		Reviews []models.Review `json:"reviews"`
	}
	if err := c.do(ctx, http.MethodGet, "/my-reviews", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

// CanReview asks whether the current user may review a booking. The reason is
// the server's explanation when the answer is no.
func (c *Client) CanReview(ctx context.Context, bookingID int) (bool, string, error) {
	var resp struct {
		CanReview bool   `json:"can_review"`
		Reason    string `json:"reason,omitempty"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d/can-review", bookingID), nil, nil, &resp); err != nil {
		return false, "", err
	}
	return resp.CanReview, resp.Reason, nil
}
