package messaging

import (
	"context"
	"log"
	"time"

	"golang.org/x/time/rate"
)

// Poller periodically refreshes the unread badge while a session is active.
// A rate limiter caps the request rate even if the ticker interval is
// misconfigured low.
type Poller struct {
	panel    *Panel
	interval time.Duration
	limiter  *rate.Limiter
}

// NewPoller builds a poller that fires every interval with the given burst
// allowance.
func NewPoller(panel *Panel, interval time.Duration, burst int) *Poller {
	if burst < 1 {
		burst = 1
	}
	return &Poller{
		panel:    panel,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), burst),
	}
}

// Run polls until the context is cancelled. It does an immediate first
// refresh, then ticks. Failures are logged and the loop keeps going; the next
// tick is the retry.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if !p.limiter.Allow() {
		return
	}
	if err := p.panel.RefreshUnread(ctx); err != nil {
		if ctx.Err() == nil {
			log.Printf("unread poll failed: %v", err)
		}
	}
}
