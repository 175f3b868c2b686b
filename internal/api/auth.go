package api

import (
	"context"
	"net/http"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Email       string          `json:"email"`
	Password    string          `json:"password"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Phone       string          `json:"phone,omitempty"`
	UserType    models.UserType `json:"user_type"`
	TermsAgreed bool            `json:"terms_agreed"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// ProfileUpdate is the payload for PUT /auth/profile. Zero-value fields are
// sent as-is; the server treats the payload as a full profile replacement.
type ProfileUpdate struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Bio             string `json:"bio"`
	Address         string `json:"address"`
	City            string `json:"city"`
	State           string `json:"state"`
	ZipCode         string `json:"zip_code"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// PasswordResetRequest is the response to a reset request. ResetLink and Token
// are only populated by development servers; production emails the link instead.
type PasswordResetRequest struct {
	Message   string `json:"message"`
	ResetLink string `json:"reset_link,omitempty"`
	Token     string `json:"token,omitempty"`
}

// Register creates a new account and returns its first session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me fetches the current user for the attached token.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile submits a full profile replacement and returns the fresh user.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	var resp struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPut, "/auth/profile", nil, update, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// DeleteAccount permanently deletes the current account and everything it owns.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/auth/delete-account", nil, nil, nil)
}

// RequestPasswordReset asks the server to issue a reset link for the email.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) (*PasswordResetRequest, error) {
	body := map[string]string{"email": email}
	var resp PasswordResetRequest
	if err := c.do(ctx, http.MethodPost, "/auth/request-password-reset", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword redeems a reset token for a new password.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "new_password": newPassword}
	return c.do(ctx, http.MethodPost, "/auth/reset-password", nil, body, nil)
}
