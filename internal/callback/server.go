// Package callback runs a small local HTTP listener that catches browser
// redirects back from external flows: the boost checkout return carrying a
// session_id, and the password-reset deep link carrying a token. Each value
// is handed to the app exactly once.
package callback

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nmil1484-source/the-wild-share/internal/config"
)

// Event is one captured redirect parameter.
type Event struct {
	// Kind is "boost" or "reset".
	Kind  string
	Value string
}

// Server is the local redirect listener.
type Server struct {
	srv    *http.Server
	events chan Event

	mu       sync.Mutex
	consumed map[string]bool
}

// NewServer builds the listener on the configured port. Events are buffered
// so the browser redirect never blocks on the app loop.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		events:   make(chan Event, 8),
		consumed: make(map[string]bool),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/boost/success", s.handleBoostSuccess)
	router.GET("/reset-password", s.handleResetPassword)

	s.srv = &http.Server{
		Addr:    ":" + cfg.CallbackPort,
		Handler: router,
	}
	return s
}

// Events is the stream of captured redirects.
func (s *Server) Events() <-chan Event {
	return s.events
}

// Start runs the listener until Shutdown.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("callback listener error: %v", err)
		}
	}()
}

// Shutdown stops the listener gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// deliver forwards a value once. Replays of the same redirect, for example a
// browser refresh on the confirmation page, are dropped.
func (s *Server) deliver(kind, value string) bool {
	key := kind + ":" + value
	s.mu.Lock()
	if s.consumed[key] {
		s.mu.Unlock()
		return false
	}
	s.consumed[key] = true
	s.mu.Unlock()

	select {
	case s.events <- Event{Kind: kind, Value: value}:
		return true
	case <-time.After(time.Second):
		log.Printf("callback event dropped, app not consuming: %s", kind)
		return false
	}
}

func (s *Server) handleBoostSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.String(http.StatusBadRequest, "missing session_id")
		return
	}
	s.deliver("boost", sessionID)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, confirmationPage("Boost payment received", "You can close this tab and return to The Wild Share."))
}

func (s *Server) handleResetPassword(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.String(http.StatusBadRequest, "missing token")
		return
	}
	s.deliver("reset", token)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, confirmationPage("Reset link received", "Return to The Wild Share to choose a new password."))
}

func confirmationPage(title, body string) string {
	return fmt.Sprintf(`<!doctype html><html><head><title>%s</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
<h1>%s</h1><p>%s</p></body></html>`, title, title, body)
}
