package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// BoostActivation is the result of confirming a checkout session.
type BoostActivation struct {
	Message   string                `json:"message"`
	Equipment *models.EquipmentItem `json:"equipment,omitempty"`
	ExpiresAt string                `json:"expires_at,omitempty"`
}

// BoostPricing fetches the purchasable boost products keyed by boost type.
func (c *Client) BoostPricing(ctx context.Context) (map[models.BoostType]models.BoostOption, error) {
	var resp struct {
		Pricing map[models.BoostType]models.BoostOption `json:"pricing"`
	}
	if err := c.do(ctx, http.MethodGet, "/boost/pricing", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Pricing, nil
}

// PurchaseBoost starts an external checkout for a boost and returns the URL to
// redirect the browser to.
func (c *Client) PurchaseBoost(ctx context.Context, equipmentID int, boostType models.BoostType) (string, error) {
	body := map[string]interface{}{
		"equipment_id": equipmentID,
		"boost_type":   boostType,
	}
	var resp struct {
		CheckoutURL string `json:"checkout_url"`
		SessionID   string `json:"session_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/boost/purchase", nil, body, &resp); err != nil {
		return "", err
	}
	return resp.CheckoutURL, nil
}

// ConfirmBoost redeems the checkout session id carried back by the redirect
// and activates the boost.
func (c *Client) ConfirmBoost(ctx context.Context, sessionID string) (*BoostActivation, error) {
	body := map[string]string{"session_id": sessionID}
	var activation BoostActivation
	if err := c.do(ctx, http.MethodPost, "/boost/success", nil, body, &activation); err != nil {
		return nil, err
	}
	return &activation, nil
}

// BoostStatus fetches the boost state of one equipment item.
func (c *Client) BoostStatus(ctx context.Context, equipmentID int) (*models.BoostStatus, error) {
	var status models.BoostStatus
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/boost/status/%d", equipmentID), nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
