package api

import (
	"context"
	"net/http"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// CreateVerificationSession starts an external identity verification session.
func (c *Client) CreateVerificationSession(ctx context.Context) (*models.VerificationSession, error) {
	var session models.VerificationSession
	if err := c.do(ctx, http.MethodPost, "/identity/create-verification-session", nil, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// VerificationStatus fetches the current identity verification state.
func (c *Client) VerificationStatus(ctx context.Context) (*models.VerificationStatus, error) {
	var status models.VerificationStatus
	if err := c.do(ctx, http.MethodGet, "/identity/verification-status", nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
