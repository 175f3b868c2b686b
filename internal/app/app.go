// Package app is the top-level controller: it owns the active view, derives
// a cancellable context per view so that late responses from an abandoned
// view are discarded, and sequences the cross-cutting flows (auth, logout,
// launch URLs, redirect callbacks).
package app

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"github.com/nmil1484-source/the-wild-share/internal/admin"
	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/booking"
	"github.com/nmil1484-source/the-wild-share/internal/callback"
	"github.com/nmil1484-source/the-wild-share/internal/catalog"
	"github.com/nmil1484-source/the-wild-share/internal/listing"
	"github.com/nmil1484-source/the-wild-share/internal/messaging"
	"github.com/nmil1484-source/the-wild-share/internal/notify"
	"github.com/nmil1484-source/the-wild-share/internal/profile"
	"github.com/nmil1484-source/the-wild-share/internal/session"
)

var ErrPasswordTooShort = errors.New("password must be at least 8 characters")

// AuthAPI is the slice of the REST client the app drives directly for the
// password reset flows.
type AuthAPI interface {
	RequestPasswordReset(ctx context.Context, email string) (*api.PasswordResetRequest, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// App wires every sub-controller together.
type App struct {
	session   *session.Manager
	authAPI   AuthAPI
	catalog   *catalog.Service
	listing   *listing.Manager
	booking   *booking.Flow
	messaging *messaging.Panel
	poller    *messaging.Poller
	profile   *profile.Manager
	admin     *admin.Console
	notifier  notify.Notifier

	base context.Context

	mu           sync.Mutex
	view         View
	viewCtx      context.Context
	viewCancel   context.CancelFunc
	authMode     AuthMode
	resetToken   string
	pollerCancel context.CancelFunc
}

// Deps bundles the sub-controllers for construction.
type Deps struct {
	Session   *session.Manager
	AuthAPI   AuthAPI
	Catalog   *catalog.Service
	Listing   *listing.Manager
	Booking   *booking.Flow
	Messaging *messaging.Panel
	Poller    *messaging.Poller
	Profile   *profile.Manager
	Admin     *admin.Console
	Notifier  notify.Notifier
}

// New builds the controller. base bounds every derived view context, so
// cancelling it on shutdown stops all in-flight work.
func New(base context.Context, deps Deps) *App {
	return &App{
		session:   deps.Session,
		authAPI:   deps.AuthAPI,
		catalog:   deps.Catalog,
		listing:   deps.Listing,
		booking:   deps.Booking,
		messaging: deps.Messaging,
		poller:    deps.Poller,
		profile:   deps.Profile,
		admin:     deps.Admin,
		notifier:  deps.Notifier,
		base:      base,
		view:      ViewBrowse,
	}
}

// CurrentView returns the active view.
func (a *App) CurrentView() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// AuthMode returns which auth form is showing.
func (a *App) AuthMode() AuthMode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authMode
}

// SetAuthMode switches the auth form.
func (a *App) SetAuthMode(mode AuthMode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.authMode = mode
}

// SwitchTo activates a view. The previous view's context is cancelled first,
// then the new view's dataset is loaded under a fresh context. Non-admins
// asking for the admin view land on Browse instead.
func (a *App) SwitchTo(view View) error {
	if view == ViewAdmin && !a.session.IsAdmin() {
		view = ViewBrowse
	}

	a.mu.Lock()
	if a.viewCancel != nil {
		a.viewCancel()
	}
	ctx, cancel := context.WithCancel(a.base)
	a.view = view
	a.viewCtx = ctx
	a.viewCancel = cancel
	a.mu.Unlock()

	var err error
	switch view {
	case ViewHome, ViewBrowse:
		err = a.catalog.Refresh(ctx)
	case ViewBookings:
		err = a.booking.LoadMyBookings(ctx)
	case ViewMessages:
		err = a.messaging.LoadConversations(ctx)
	case ViewMyEquipment:
		err = a.listing.LoadMyEquipment(ctx)
	case ViewAdmin:
		err = a.admin.SelectTab(ctx, admin.TabOverview)
	}
	if err != nil && ctx.Err() == nil {
		a.notifier.Error(api.ErrorMessage(err, "Failed to load "+view.String()))
		return err
	}
	return nil
}

// ViewContext returns the active view's context for flow calls driven by the
// shell. It is cancelled as soon as the view changes.
func (a *App) ViewContext() context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.viewCtx == nil {
		a.viewCtx, a.viewCancel = context.WithCancel(a.base)
	}
	return a.viewCtx
}

// Hydrate restores a persisted session on startup, then starts the unread
// poller if a user is signed in.
func (a *App) Hydrate(ctx context.Context) error {
	if err := a.session.Hydrate(ctx); err != nil {
		return err
	}
	a.afterAuth()
	return nil
}

// Login authenticates and starts the session-scoped background work.
func (a *App) Login(ctx context.Context, email, password string) error {
	user, err := a.session.Login(ctx, email, password)
	if err != nil {
		a.notifier.Error(api.ErrorMessage(err, "Login failed"))
		return err
	}
	a.notifier.Info("Welcome back, " + user.DisplayName())
	a.afterAuth()
	return a.SwitchTo(ViewBrowse)
}

// Register creates the account and signs in.
func (a *App) Register(ctx context.Context, req api.RegisterRequest) error {
	if !req.TermsAgreed {
		err := errors.New("you must agree to the terms of service")
		a.notifier.Error(err.Error())
		return err
	}
	user, err := a.session.Register(ctx, req)
	if err != nil {
		a.notifier.Error(api.ErrorMessage(err, "Registration failed"))
		return err
	}
	a.notifier.Info("Welcome to The Wild Share, " + user.DisplayName())
	a.afterAuth()
	return a.SwitchTo(ViewBrowse)
}

// afterAuth propagates the signed-in user to the sub-controllers and starts
// the unread poller.
func (a *App) afterAuth() {
	user := a.session.CurrentUser()
	if user == nil {
		return
	}
	a.messaging.SetCurrentUser(user.ID)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pollerCancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(a.base)
	a.pollerCancel = cancel
	go a.poller.Run(ctx)
}

// Logout clears the session and every sub-controller's state, stops the
// poller, then reloads the catalog without a token.
func (a *App) Logout() error {
	a.mu.Lock()
	if a.pollerCancel != nil {
		a.pollerCancel()
		a.pollerCancel = nil
	}
	a.mu.Unlock()

	err := a.session.Logout()
	a.listing.Reset()
	a.booking.Reset()
	a.messaging.Reset()
	a.admin.Reset()
	a.catalog.Clear()
	if err != nil {
		return err
	}
	return a.SwitchTo(ViewBrowse)
}

// RequestPasswordReset asks for a reset link. Development servers return the
// token inline; when present it is surfaced so the flow can continue locally.
func (a *App) RequestPasswordReset(ctx context.Context, email string) error {
	resp, err := a.authAPI.RequestPasswordReset(ctx, email)
	if err != nil {
		a.notifier.Error(api.ErrorMessage(err, "Failed to request password reset"))
		return err
	}
	a.notifier.Info(resp.Message)
	if resp.Token != "" {
		a.mu.Lock()
		a.resetToken = resp.Token
		a.authMode = AuthModeResetPassword
		a.mu.Unlock()
	}
	return nil
}

// ResetPassword redeems the stored token, which is consumed whether the call
// succeeds or not.
func (a *App) ResetPassword(ctx context.Context, newPassword string) error {
	if len(newPassword) < 8 {
		a.notifier.Error(ErrPasswordTooShort.Error())
		return ErrPasswordTooShort
	}
	a.mu.Lock()
	token := a.resetToken
	a.resetToken = ""
	a.mu.Unlock()
	if token == "" {
		err := errors.New("no reset token, open the link from your email first")
		a.notifier.Error(err.Error())
		return err
	}
	if err := a.authAPI.ResetPassword(ctx, token, newPassword); err != nil {
		a.notifier.Error(api.ErrorMessage(err, "Failed to reset password"))
		return err
	}
	a.notifier.Info("Password updated, please sign in")
	a.mu.Lock()
	a.authMode = AuthModeLogin
	a.mu.Unlock()
	return nil
}

// HandleLaunchURL inspects the URL the app was started with. A reset token
// routes to the reset form; a boost checkout return confirms the boost. Each
// parameter acts exactly once per launch.
func (a *App) HandleLaunchURL(ctx context.Context, rawURL string) {
	if rawURL == "" {
		return
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		a.notifier.Error("Ignoring malformed launch URL")
		return
	}
	if token := parsed.Query().Get("token"); token != "" {
		a.mu.Lock()
		a.resetToken = token
		a.authMode = AuthModeResetPassword
		a.view = ViewAuth
		a.mu.Unlock()
		return
	}
	if strings.HasSuffix(parsed.Path, "/boost/success") {
		if sessionID := parsed.Query().Get("session_id"); sessionID != "" {
			a.confirmBoost(ctx, sessionID)
		}
	}
}

// HandleCallbackEvent reacts to a redirect caught by the local listener.
func (a *App) HandleCallbackEvent(ctx context.Context, event callback.Event) {
	switch event.Kind {
	case "boost":
		a.confirmBoost(ctx, event.Value)
	case "reset":
		a.mu.Lock()
		a.resetToken = event.Value
		a.authMode = AuthModeResetPassword
		a.view = ViewAuth
		a.mu.Unlock()
		a.notifier.Info("Reset link received, enter your new password")
	}
}

func (a *App) confirmBoost(ctx context.Context, sessionID string) {
	if err := a.listing.ConfirmBoost(ctx, sessionID); err != nil {
		return
	}
	if a.CurrentView() == ViewMyEquipment {
		if err := a.listing.LoadMyEquipment(ctx); err != nil && ctx.Err() == nil {
			a.notifier.Error(api.ErrorMessage(err, "Failed to refresh equipment"))
		}
	}
}
