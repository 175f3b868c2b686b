// Package admin implements the moderation console: dashboard stats, user and
// equipment moderation and the platform booking list. All tabs are lazy; a
// tab only hits the network on first activation or after its filter changes.
package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/models"
	"github.com/nmil1484-source/the-wild-share/internal/notify"
)

var ErrNotAdmin = errors.New("admin access required")

// Tab identifies one console dataset.
type Tab int

const (
	TabOverview Tab = iota
	TabUsers
	TabEquipment
	TabBookings
)

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "overview"
	case TabUsers:
		return "users"
	case TabEquipment:
		return "equipment"
	case TabBookings:
		return "bookings"
	default:
		return "unknown"
	}
}

// API is the slice of the REST client the console depends on.
type API interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, *models.RecentActivity, error)
	AdminUsers(ctx context.Context, search string) ([]models.User, *models.Page, error)
	BanUser(ctx context.Context, userID int, reason string) error
	UnbanUser(ctx context.Context, userID int) error
	AdminDeleteUser(ctx context.Context, userID int) error
	AdminEquipment(ctx context.Context, status models.ApprovalStatus, search string) ([]models.EquipmentItem, *models.Page, error)
	ApproveEquipment(ctx context.Context, equipmentID int) error
	RejectEquipment(ctx context.Context, equipmentID int, reason string) error
	AdminDeleteEquipment(ctx context.Context, equipmentID int) error
	AdminBookings(ctx context.Context) ([]models.Booking, *models.Page, error)
}

// Gate answers whether the current session may use the console.
type Gate interface {
	IsAdmin() bool
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ReasonPrompt collects a free-text reason for a moderation action. ok is
// false when the admin aborts the prompt.
type ReasonPrompt interface {
	Reason(prompt string) (reason string, ok bool)
}

// Console holds the per-tab datasets and dirty flags.
type Console struct {
	api       API
	gate      Gate
	confirmer Confirmer
	prompter  ReasonPrompt
	notifier  notify.Notifier

	mu        sync.Mutex
	activeTab Tab
	loaded    map[Tab]bool

	stats    *models.DashboardStats
	activity *models.RecentActivity

	userSearch string
	users      []models.User
	usersPage  *models.Page

	equipmentStatus models.ApprovalStatus
	equipmentSearch string
	equipment       []models.EquipmentItem
	equipmentPage   *models.Page

	bookings     []models.Booking
	bookingsPage *models.Page
}

// NewConsole wires the console. The equipment tab defaults to the pending
// moderation queue.
func NewConsole(adminAPI API, gate Gate, confirmer Confirmer, prompter ReasonPrompt, notifier notify.Notifier) *Console {
	return &Console{
		api:             adminAPI,
		gate:            gate,
		confirmer:       confirmer,
		prompter:        prompter,
		notifier:        notifier,
		loaded:          make(map[Tab]bool),
		equipmentStatus: models.ApprovalPending,
	}
}

// ActiveTab returns the currently selected tab.
func (c *Console) ActiveTab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTab
}

// Stats returns the overview dataset.
func (c *Console) Stats() (*models.DashboardStats, *models.RecentActivity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats, c.activity
}

// Users returns the user tab dataset.
func (c *Console) Users() ([]models.User, *models.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users, c.usersPage
}

// Equipment returns the equipment tab dataset.
func (c *Console) Equipment() ([]models.EquipmentItem, *models.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.equipment, c.equipmentPage
}

// Bookings returns the booking tab dataset.
func (c *Console) Bookings() ([]models.Booking, *models.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bookings, c.bookingsPage
}

// SelectTab activates a tab, loading its dataset if it has never loaded or
// its filters changed since the last load.
func (c *Console) SelectTab(ctx context.Context, tab Tab) error {
	if !c.gate.IsAdmin() {
		return ErrNotAdmin
	}
	c.mu.Lock()
	c.activeTab = tab
	needsLoad := !c.loaded[tab]
	c.mu.Unlock()
	if !needsLoad {
		return nil
	}
	return c.loadTab(ctx, tab)
}

// SetUserSearch updates the user filter and marks the tab dirty.
func (c *Console) SetUserSearch(search string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if search == c.userSearch {
		return
	}
	c.userSearch = search
	c.loaded[TabUsers] = false
}

// SetEquipmentFilter updates the equipment filters and marks the tab dirty.
func (c *Console) SetEquipmentFilter(status models.ApprovalStatus, search string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if status == c.equipmentStatus && search == c.equipmentSearch {
		return
	}
	c.equipmentStatus = status
	c.equipmentSearch = search
	c.loaded[TabEquipment] = false
}

// Refresh reloads the active tab unconditionally.
func (c *Console) Refresh(ctx context.Context) error {
	if !c.gate.IsAdmin() {
		return ErrNotAdmin
	}
	c.mu.Lock()
	tab := c.activeTab
	c.mu.Unlock()
	return c.loadTab(ctx, tab)
}

func (c *Console) loadTab(ctx context.Context, tab Tab) error {
	switch tab {
	case TabOverview:
		stats, activity, err := c.api.DashboardStats(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.stats = stats
		c.activity = activity
		c.loaded[tab] = true
		c.mu.Unlock()
	case TabUsers:
		c.mu.Lock()
		search := c.userSearch
		c.mu.Unlock()
		users, page, err := c.api.AdminUsers(ctx, search)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.users = users
		c.usersPage = page
		c.loaded[tab] = true
		c.mu.Unlock()
	case TabEquipment:
		c.mu.Lock()
		status, search := c.equipmentStatus, c.equipmentSearch
		c.mu.Unlock()
		equipment, page, err := c.api.AdminEquipment(ctx, status, search)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.equipment = equipment
		c.equipmentPage = page
		c.loaded[tab] = true
		c.mu.Unlock()
	case TabBookings:
		bookings, page, err := c.api.AdminBookings(ctx)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.bookings = bookings
		c.bookingsPage = page
		c.loaded[tab] = true
		c.mu.Unlock()
	}
	return nil
}

// BanUser collects a reason and bans the user, then reloads the tab.
func (c *Console) BanUser(ctx context.Context, userID int) error {
	reason, ok := c.prompter.Reason("Reason for banning this user:")
	if !ok {
		return nil
	}
	if err := c.api.BanUser(ctx, userID, reason); err != nil {
		c.notifier.Error(api.ErrorMessage(err, "Failed to ban user"))
		return err
	}
	c.notifier.Info("User banned")
	return c.Refresh(ctx)
}

// UnbanUser lifts a ban, then reloads the tab.
func (c *Console) UnbanUser(ctx context.Context, userID int) error {
	if err := c.api.UnbanUser(ctx, userID); err != nil {
		c.notifier.Error(api.ErrorMessage(err, "Failed to unban user"))
		return err
	}
	c.notifier.Info("User unbanned")
	return c.Refresh(ctx)
}

// DeleteUser removes an account after confirmation, then reloads the tab.
func (c *Console) DeleteUser(ctx context.Context, userID int) error {
	if !c.confirmer.Confirm("Permanently delete this user and all their data?") {
		return nil
	}
	if err := c.api.AdminDeleteUser(ctx, userID); err != nil {
		c.notifier.Error(api.ErrorMessage(err, "Failed to delete user"))
		return err
	}
	c.notifier.Info("User deleted")
	return c.Refresh(ctx)
}

// ApproveEquipment clears a listing for the public catalog, then reloads.
func (c *Console) ApproveEquipment(ctx context.Context, equipmentID int) error {
	if err := c.api.ApproveEquipment(ctx, equipmentID); err != nil {
		c.notifier.Error(api.ErrorMessage(err, "Failed to approve equipment"))
		return err
	}
	c.notifier.Info("Equipment approved")
	return c.Refresh(ctx)
}

// RejectEquipment collects a reason and rejects a listing, then reloads.
func (c *Console) RejectEquipment(ctx context.Context, equipmentID int) error {
	reason, ok := c.prompter.Reason("Reason for rejecting this listing:")
	if !ok {
		return nil
	}
	if err := c.api.RejectEquipment(ctx, equipmentID, reason); err != nil {
		c.notifier.Error(api.ErrorMessage(err, "Failed to reject equipment"))
		return err
	}
	c.notifier.Info("Equipment rejected")
	return c.Refresh(ctx)
}

// DeleteEquipment removes a listing after confirmation, then reloads.
func (c *Console) DeleteEquipment(ctx context.Context, equipmentID int) error {
	if !c.confirmer.Confirm("Permanently delete this listing?") {
		return nil
	}
	if err := c.api.AdminDeleteEquipment(ctx, equipmentID); err != nil {
		c.notifier.Error(api.ErrorMessage(err, "Failed to delete equipment"))
		return err
	}
	c.notifier.Info("Equipment deleted")
	return c.Refresh(ctx)
}

// Reset drops all cached datasets, as on logout.
func (c *Console) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeTab = TabOverview
	c.loaded = make(map[Tab]bool)
	c.stats = nil
	c.activity = nil
	c.userSearch = ""
	c.users = nil
	c.usersPage = nil
	c.equipmentStatus = models.ApprovalPending
	c.equipmentSearch = ""
	c.equipment = nil
	c.equipmentPage = nil
	c.bookings = nil
	c.bookingsPage = nil
}
