package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/config"
	"github.com/nmil1484-source/the-wild-share/internal/models"
	"github.com/nmil1484-source/the-wild-share/internal/notify"
	"github.com/nmil1484-source/the-wild-share/internal/preview"
)

// ErrSubmitInFlight gates re-entry while a submission is pending. It is a
// loading flag, not cancellation.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// ErrNotEditing is returned by Update when no edit session is open.
var ErrNotEditing = errors.New("no equipment selected for editing")

// EquipmentAPI is the slice of the REST client listing management depends on.
type EquipmentAPI interface {
	CreateEquipment(ctx context.Context, payload api.EquipmentPayload) (*models.EquipmentItem, error)
	UpdateEquipment(ctx context.Context, id int, payload api.EquipmentPayload) (*models.EquipmentItem, error)
	DeleteEquipment(ctx context.Context, id int) error
	MyEquipment(ctx context.Context) ([]models.EquipmentItem, error)
	UploadImages(ctx context.Context, files []api.UploadFile) ([]string, error)
	BoostPricing(ctx context.Context) (map[models.BoostType]models.BoostOption, error)
	PurchaseBoost(ctx context.Context, equipmentID int, boostType models.BoostType) (string, error)
	ConfirmBoost(ctx context.Context, sessionID string) (*api.BoostActivation, error)
}

// CatalogRefresher re-reads the public catalog after mutations.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Manager drives the owner's listing flows: the form, the pending image
// batch, two-phase create/update, delete and boost purchase. Every mutation
// is followed by an authoritative re-read of both equipment lists.
type Manager struct {
	cfg       *config.Config
	api       EquipmentAPI
	catalog   CatalogRefresher
	previews  preview.IStore
	confirmer Confirmer
	notifier  notify.Notifier

	mu          sync.Mutex
	form        Form
	batch       *Batch
	editing     *models.EquipmentItem
	myEquipment []models.EquipmentItem
	submitting  bool
}

// NewManager creates a listing manager with a cleared form and empty batch.
func NewManager(cfg *config.Config, equipmentAPI EquipmentAPI, catalog CatalogRefresher, previews preview.IStore, confirmer Confirmer, notifier notify.Notifier) *Manager {
	return &Manager{
		cfg:       cfg,
		api:       equipmentAPI,
		catalog:   catalog,
		previews:  previews,
		confirmer: confirmer,
		notifier:  notifier,
		form:      EmptyForm(),
		batch:     NewBatch(previews, cfg.MaxBatchImages, cfg.MaxImageSizeMB),
	}
}

// Form returns a copy of the current form values.
func (m *Manager) Form() Form {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.form
}

// SetForm replaces the form values.
func (m *Manager) SetForm(form Form) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form = form
}

// Batch returns the pending image batch.
func (m *Manager) Batch() *Batch {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.batch
}

// MyEquipment returns the user's listings as last fetched.
func (m *Manager) MyEquipment() []models.EquipmentItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.myEquipment
}

// Editing returns the item currently open for editing, or nil.
func (m *Manager) Editing() *models.EquipmentItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editing
}

// LoadMyEquipment refetches the user's listings. On failure the held list is
// emptied rather than kept stale.
func (m *Manager) LoadMyEquipment(ctx context.Context) error {
	items, err := m.api.MyEquipment(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.myEquipment = nil
		return fmt.Errorf("failed to load my equipment: %w", err)
	}
	m.myEquipment = items
	return nil
}

// Create submits a new listing. When images are attached they are uploaded
// first in one batch request; an upload failure aborts the whole operation
// with no equipment record created.
func (m *Manager) Create(ctx context.Context) error {
	if err := m.beginSubmit(); err != nil {
		return err
	}
	defer m.endSubmit()

	form := m.Form()
	if err := form.Validate(); err != nil {
		m.notifier.Error(err.Error())
		return err
	}

	var imageURLs []string
	if m.batch.Len() > 0 {
		urls, err := m.api.UploadImages(ctx, m.batch.UploadFiles())
		if err != nil {
			m.notifier.Error(api.ErrorMessage(err, "Failed to upload images"))
			return err
		}
		imageURLs = urls
	}

	if _, err := m.api.CreateEquipment(ctx, form.payload(imageURLs)); err != nil {
		m.notifier.Error(api.ErrorMessage(err, "Failed to create equipment"))
		return err
	}

	m.resetFormAndBatch()
	m.notifier.Info("Equipment created successfully!")
	m.refreshAfterMutation(ctx)
	return nil
}

// BeginEdit opens an edit session: the item's values are loaded into the
// form and the image batch is reset.
func (m *Manager) BeginEdit(item *models.EquipmentItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editing = item
	m.form = FormFromItem(item)
	m.batch.Discard()
}

// CancelEdit abandons the edit session and its pending images.
func (m *Manager) CancelEdit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.editing = nil
	m.form = EmptyForm()
	m.batch.Discard()
}

// Update submits the open edit session. Newly selected images go through the
// same upload-then-submit sequence as Create; with no new images the payload
// omits image_urls so the existing gallery is untouched.
func (m *Manager) Update(ctx context.Context) error {
	if err := m.beginSubmit(); err != nil {
		return err
	}
	defer m.endSubmit()

	editing := m.Editing()
	if editing == nil {
		return ErrNotEditing
	}

	form := m.Form()
	if err := form.Validate(); err != nil {
		m.notifier.Error(err.Error())
		return err
	}

	var imageURLs []string
	if m.batch.Len() > 0 {
		urls, err := m.api.UploadImages(ctx, m.batch.UploadFiles())
		if err != nil {
			m.notifier.Error(api.ErrorMessage(err, "Failed to upload images"))
			return err
		}
		imageURLs = urls
	}

	if _, err := m.api.UpdateEquipment(ctx, editing.ID, form.payload(imageURLs)); err != nil {
		m.notifier.Error(api.ErrorMessage(err, "Failed to update equipment"))
		return err
	}

	m.mu.Lock()
	m.editing = nil
	m.mu.Unlock()
	m.resetFormAndBatch()
	m.notifier.Info("Equipment updated successfully!")
	m.refreshAfterMutation(ctx)
	return nil
}

// Delete removes an owned listing after interactive confirmation. Declining
// is a no-op with no side effects.
func (m *Manager) Delete(ctx context.Context, id int) error {
	if !m.confirmer.Confirm("Are you sure you want to delete this equipment?") {
		return nil
	}
	if err := m.api.DeleteEquipment(ctx, id); err != nil {
		m.notifier.Error(api.ErrorMessage(err, "Failed to delete equipment"))
		return err
	}
	m.refreshAfterMutation(ctx)
	return nil
}

// BoostPricing fetches the purchasable boost products from the server.
func (m *Manager) BoostPricing(ctx context.Context) (map[models.BoostType]models.BoostOption, error) {
	pricing, err := m.api.BoostPricing(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load boost pricing: %w", err)
	}
	return pricing, nil
}

// PurchaseBoost starts an external checkout for one of the user's listings
// and returns the URL the browser should be sent to.
func (m *Manager) PurchaseBoost(ctx context.Context, equipmentID int, boostType models.BoostType) (string, error) {
	if equipmentID == 0 {
		err := errors.New("please select an equipment to boost")
		m.notifier.Error(err.Error())
		return "", err
	}
	checkoutURL, err := m.api.PurchaseBoost(ctx, equipmentID, boostType)
	if err != nil {
		m.notifier.Error(api.ErrorMessage(err, "Failed to create checkout session"))
		return "", err
	}
	return checkoutURL, nil
}

// ConfirmBoost redeems the session id carried back by the checkout redirect
// and refreshes the owner's listings.
func (m *Manager) ConfirmBoost(ctx context.Context, sessionID string) error {
	activation, err := m.api.ConfirmBoost(ctx, sessionID)
	if err != nil {
		m.notifier.Error(api.ErrorMessage(err, "Failed to activate boost"))
		return err
	}
	if activation.ExpiresAt != "" {
		m.notifier.Info(fmt.Sprintf("Boost activated successfully! Featured until %s", activation.ExpiresAt))
	} else {
		m.notifier.Info("Boost activated successfully!")
	}
	if err := m.LoadMyEquipment(ctx); err != nil {
		return err
	}
	return nil
}

// Reset clears the form, batch, edit session and held list, as on logout.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form = EmptyForm()
	m.batch.Discard()
	m.batch = NewBatch(m.previews, m.cfg.MaxBatchImages, m.cfg.MaxImageSizeMB)
	m.editing = nil
	m.myEquipment = nil
	m.submitting = false
}

func (m *Manager) beginSubmit() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.submitting {
		return ErrSubmitInFlight
	}
	m.submitting = true
	return nil
}

func (m *Manager) endSubmit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false
}

func (m *Manager) resetFormAndBatch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.form = EmptyForm()
	m.batch.Discard()
}

// refreshAfterMutation re-reads both equipment lists. A refresh failure is
// surfaced but does not undo the mutation, which already succeeded.
func (m *Manager) refreshAfterMutation(ctx context.Context) {
	if err := m.LoadMyEquipment(ctx); err != nil {
		m.notifier.Error(api.ErrorMessage(err, "Failed to refresh my equipment"))
	}
	if err := m.catalog.Refresh(ctx); err != nil {
		m.notifier.Error(api.ErrorMessage(err, "Failed to refresh equipment"))
	}
}
