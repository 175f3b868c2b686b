package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// EquipmentPayload is the create/update payload for a listing. ImageURLs is
// omitted entirely when nil so an update without new images leaves the
// server-side gallery untouched.
type EquipmentPayload struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        models.Category `json:"category"`
	DailyPrice      float64         `json:"daily_price"`
	WeeklyPrice     *float64        `json:"weekly_price,omitempty"`
	MonthlyPrice    *float64        `json:"monthly_price,omitempty"`
	CapacitySpec    string          `json:"capacity_spec"`
	Location        string          `json:"location"`
	SecurityDeposit *float64        `json:"security_deposit,omitempty"`
	ImageURLs       []string        `json:"image_urls,omitempty"`
}

// ListEquipment fetches the public catalog, optionally scoped to a category
// server-side. The endpoint historically returned either a bare array or an
// `{equipment: [...], total_count: N}` envelope; both are accepted.
func (c *Client) ListEquipment(ctx context.Context, category models.Category) ([]models.EquipmentItem, error) {
	query := url.Values{}
	if category != "" && category != models.CategoryAll {
		query.Set("category", string(category))
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/equipment", query, nil, &raw); err != nil {
		return nil, err
	}

	var items []models.EquipmentItem
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}
	var envelope struct {
		Equipment []models.EquipmentItem `json:"equipment"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode equipment list: %w", err)
	}
	return envelope.Equipment, nil
}

// GetEquipment fetches one listing by id.
func (c *Client) GetEquipment(ctx context.Context, id int) (*models.EquipmentItem, error) {
	var item models.EquipmentItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/equipment/%d", id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateEquipment submits a new listing.
func (c *Client) CreateEquipment(ctx context.Context, payload EquipmentPayload) (*models.EquipmentItem, error) {
	var resp struct {
		Message   string                `json:"message"`
		Equipment *models.EquipmentItem `json:"equipment"`
	}
	if err := c.do(ctx, http.MethodPost, "/equipment", nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp.Equipment, nil
}

// UpdateEquipment updates an owned listing.
func (c *Client) UpdateEquipment(ctx context.Context, id int, payload EquipmentPayload) (*models.EquipmentItem, error) {
	var resp struct {
		Message   string                `json:"message"`
		Equipment *models.EquipmentItem `json:"equipment"`
	}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/equipment/%d", id), nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp.Equipment, nil
}

// DeleteEquipment deletes an owned listing by id.
func (c *Client) DeleteEquipment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/equipment/%d", id), nil, nil, nil)
}

// MyEquipment fetches the current user's listings, all approval states included.
func (c *Client) MyEquipment(ctx context.Context) ([]models.EquipmentItem, error) {
	var items []models.EquipmentItem
	if err := c.do(ctx, http.MethodGet, "/my-equipment", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
