// Package profile implements the account settings flows: profile edits with
// a single pending avatar image, identity verification hand-off and account
// deletion.
package profile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/config"
	"github.com/nmil1484-source/the-wild-share/internal/models"
	"github.com/nmil1484-source/the-wild-share/internal/notify"
	"github.com/nmil1484-source/the-wild-share/internal/preview"
)

var validate = validator.New()

var ErrSubmitInFlight = errors.New("a profile update is already in progress")

// Form mirrors the editable profile fields.
type Form struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"omitempty,min=7"`
	Bio       string `validate:"max=1000"`
	Address   string
	City      string
	State     string
	ZipCode   string
}

// Validate checks the form against its field constraints.
func (f *Form) Validate() error {
	return validate.Struct(f)
}

// FormFromUser pre-fills the form from the cached session user.
func FormFromUser(user *models.User) Form {
	return Form{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Bio:       user.Bio,
		Address:   user.Address,
		City:      user.City,
		State:     user.State,
		ZipCode:   user.ZipCode,
	}
}

// API is the slice of the REST client the profile manager depends on.
type API interface {
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*models.User, error)
	UploadImage(ctx context.Context, file api.UploadFile) (string, error)
	DeleteAccount(ctx context.Context) error
	CreateVerificationSession(ctx context.Context) (*models.VerificationSession, error)
	VerificationStatus(ctx context.Context) (*models.VerificationStatus, error)
}

// Session is what the manager needs from the session layer.
type Session interface {
	CurrentUser() *models.User
	SetUser(user *models.User)
	Logout() error
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// PendingImage is a validated avatar selection not yet uploaded.
type PendingImage struct {
	Filename string
	MIMEType string
	Content  []byte
}

// Manager drives the profile view.
type Manager struct {
	cfg       *config.Config
	api       API
	session   Session
	confirmer Confirmer
	notifier  notify.Notifier

	mu         sync.Mutex
	image      *PendingImage
	submitting bool
}

// NewManager wires the profile manager.
func NewManager(cfg *config.Config, profileAPI API, session Session, confirmer Confirmer, notifier notify.Notifier) *Manager {
	return &Manager{cfg: cfg, api: profileAPI, session: session, confirmer: confirmer, notifier: notifier}
}

// SelectImage validates a replacement avatar. A rejected file leaves any
// previously selected image untouched.
func (m *Manager) SelectImage(filename, mimeType string, content []byte) error {
	if err := preview.ValidateImage(mimeType, int64(len(content)), m.cfg.MaxImageSizeMB); err != nil {
		m.notifier.Error(err.Error())
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.image = &PendingImage{Filename: filename, MIMEType: mimeType, Content: content}
	return nil
}

// PendingImage returns the selected avatar, or nil.
func (m *Manager) PendingImage() *PendingImage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.image
}

// ClearImage drops the pending avatar selection.
func (m *Manager) ClearImage() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.image = nil
}

// Update uploads the pending avatar if any, then submits the profile. An
// upload failure aborts before the profile call. The fresh user from the
// response is persisted through the session so every view sees it.
func (m *Manager) Update(ctx context.Context, form Form) error {
	if err := form.Validate(); err != nil {
		m.notifier.Error("Please fix the highlighted fields")
		return err
	}

	m.mu.Lock()
	if m.submitting {
		m.mu.Unlock()
		return ErrSubmitInFlight
	}
	m.submitting = true
	image := m.image
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.submitting = false
		m.mu.Unlock()
	}()

	current := m.session.CurrentUser()
	imageURL := ""
	if current != nil {
		imageURL = current.ProfileImageURL
	}
	if image != nil {
		url, err := m.api.UploadImage(ctx, api.UploadFile{
			Filename: image.Filename,
			Content:  bytes.NewReader(image.Content),
		})
		if err != nil {
			m.notifier.Error(api.ErrorMessage(err, "Failed to upload profile image"))
			return err
		}
		imageURL = url
	}

	user, err := m.api.UpdateProfile(ctx, api.ProfileUpdate{
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Phone:           form.Phone,
		Email:           form.Email,
		Bio:             form.Bio,
		Address:         form.Address,
		City:            form.City,
		State:           form.State,
		ZipCode:         form.ZipCode,
		ProfileImageURL: imageURL,
	})
	if err != nil {
		m.notifier.Error(api.ErrorMessage(err, "Failed to update profile"))
		return err
	}

	m.session.SetUser(user)
	m.mu.Lock()
	m.image = nil
	m.mu.Unlock()
	m.notifier.Info("Profile updated")
	return nil
}

// StartVerification creates an identity verification session and returns the
// external URL to open in a new browser context.
func (m *Manager) StartVerification(ctx context.Context) (string, error) {
	session, err := m.api.CreateVerificationSession(ctx)
	if err != nil {
		m.notifier.Error(api.ErrorMessage(err, "Failed to start identity verification"))
		return "", err
	}
	return session.URL, nil
}

// VerificationStatus polls the current verification state.
func (m *Manager) VerificationStatus(ctx context.Context) (*models.VerificationStatus, error) {
	status, err := m.api.VerificationStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch verification status: %w", err)
	}
	return status, nil
}

// DeleteAccount permanently deletes the account after confirmation and clears
// the local session.
func (m *Manager) DeleteAccount(ctx context.Context) error {
	if !m.confirmer.Confirm("Delete your account and everything it owns? This cannot be undone.") {
		return nil
	}
	if err := m.api.DeleteAccount(ctx); err != nil {
		m.notifier.Error(api.ErrorMessage(err, "Failed to delete account"))
		return err
	}
	m.notifier.Info("Account deleted")
	return m.session.Logout()
}
