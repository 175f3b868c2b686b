package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// DashboardStats fetches the admin overview counters and recent activity.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, *models.RecentActivity, error) {
	var resp struct {
		Success        bool                   `json:"success"`
		Stats          *models.DashboardStats `json:"stats"`
		RecentActivity *models.RecentActivity `json:"recent_activity"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard/stats", nil, nil, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Stats, resp.RecentActivity, nil
}

// AdminUsers lists users, optionally filtered by a search term.
func (c *Client) AdminUsers(ctx context.Context, search string) ([]models.User, *models.Page, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	var resp struct {
		Success bool          `json:"success"`
		Users   []models.User `json:"users"`
		models.Page
	}
	if err := c.do(ctx, http.MethodGet, "/admin/users", query, nil, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Users, &resp.Page, nil
}

// BanUser bans a user with a required reason.
func (c *Client) BanUser(ctx context.Context, userID int, reason string) error {
	body := map[string]string{"reason": reason}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/ban", userID), nil, body, nil)
}

// UnbanUser lifts a user's ban.
func (c *Client) UnbanUser(ctx context.Context, userID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/users/%d/unban", userID), nil, nil, nil)
}

// AdminDeleteUser permanently deletes a user.
func (c *Client) AdminDeleteUser(ctx context.Context, userID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", userID), nil, nil, nil)
}

// AdminEquipment lists equipment filtered by approval status and search term.
func (c *Client) AdminEquipment(ctx context.Context, status models.ApprovalStatus, search string) ([]models.EquipmentItem, *models.Page, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", string(status))
	}
	if search != "" {
		query.Set("search", search)
	}
	var resp struct {
		Success   bool                   `json:"success"`
		Equipment []models.EquipmentItem `json:"equipment"`
		models.Page
	}
	if err := c.do(ctx, http.MethodGet, "/admin/equipment", query, nil, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Equipment, &resp.Page, nil
}

// ApproveEquipment approves a pending listing.
func (c *Client) ApproveEquipment(ctx context.Context, equipmentID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/equipment/%d/approve", equipmentID), nil, nil, nil)
}

// RejectEquipment rejects a listing with a required reason.
func (c *Client) RejectEquipment(ctx context.Context, equipmentID int, reason string) error {
	body := map[string]string{"reason": reason}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/equipment/%d/reject", equipmentID), nil, body, nil)
}

// AdminDeleteEquipment deletes any listing.
func (c *Client) AdminDeleteEquipment(ctx context.Context, equipmentID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/equipment/%d", equipmentID), nil, nil, nil)
}

// AdminBookings lists all bookings platform-wide.
func (c *Client) AdminBookings(ctx context.Context) ([]models.Booking, *models.Page, error) {
	var resp struct {
		Success  bool             `json:"success"`
		Bookings []models.Booking `json:"bookings"`
		models.Page
	}
	if err := c.do(ctx, http.MethodGet, "/admin/bookings", nil, nil, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Bookings, &resp.Page, nil
}
