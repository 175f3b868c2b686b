package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// AuthAPI is the slice of the REST client the session manager depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

// Manager holds the current session and is the process's only token source.
// All access goes through it; nothing else touches the store.
type Manager struct {
	store Store
	api   AuthAPI

	mu    sync.RWMutex
	token string
	user  *models.User
}

// NewManager creates a session manager over the given store. The API client
// is attached afterwards with SetAPI because the client itself needs the
// manager as its token source.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// SetAPI attaches the REST client used for login, register and refresh.
func (m *Manager) SetAPI(authAPI AuthAPI) {
	m.api = authAPI
}

// Token returns the current bearer token, or "" when unauthenticated.
// It satisfies api.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// CurrentUser returns the cached user, or nil when unauthenticated.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != "" && m.user != nil
}

// IsAdmin reports whether the current user carries the admin flag.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil && m.user.IsAdmin
}

// Hydrate restores the session at startup: the saved user becomes visible
// immediately, then the token is refreshed against the server. A stale or
// rejected token silently clears the session rather than surfacing an error.
func (m *Manager) Hydrate(ctx context.Context) error {
	snapshot, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if snapshot == nil || snapshot.AccessToken == "" {
		return nil
	}

	m.mu.Lock()
	m.token = snapshot.AccessToken
	m.user = snapshot.User
	m.mu.Unlock()

	if tokenExpired(snapshot.AccessToken) {
		log.Println("Saved access token has expired; clearing session.")
		return m.Logout()
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			log.Println("Saved access token rejected by server; clearing session.")
			return m.Logout()
		}
		// Transport failures keep the cached user; the token may still be good.
		log.Printf("Session refresh failed, keeping cached user: %v", err)
		return nil
	}

	m.setSession(snapshot.AccessToken, user)
	return nil
}

// Login authenticates and persists the new session.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	m.setSession(resp.AccessToken, resp.User)
	return resp.User, nil
}

// Register creates an account and persists its first session.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	resp, err := m.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	m.setSession(resp.AccessToken, resp.User)
	return resp.User, nil
}

// SetUser replaces the cached user after a profile update and persists it.
func (m *Manager) SetUser(user *models.User) {
	m.mu.Lock()
	token := m.token
	m.user = user
	m.mu.Unlock()
	if token != "" {
		m.persist(token, user)
	}
}

// Logout clears the session wholesale, in memory and on disk.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session store: %w", err)
	}
	return nil
}

func (m *Manager) setSession(token string, user *models.User) {
	m.mu.Lock()
	m.token = token
	m.user = user
	m.mu.Unlock()
	m.persist(token, user)
}

func (m *Manager) persist(token string, user *models.User) {
	if err := m.store.Save(&Snapshot{AccessToken: token, User: user}); err != nil {
		log.Printf("Failed to persist session: %v", err)
	}
}

// tokenExpired checks the token's exp claim without verifying the signature;
// verification is the server's job. Unparseable tokens are not treated as
// expired so the server stays the source of truth.
func tokenExpired(tokenString string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
