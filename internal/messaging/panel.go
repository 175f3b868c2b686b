// Package messaging holds the conversation list, the open thread and the
// background unread-count poller. Message state is server-authoritative; the
// client never appends optimistically.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/models"
	"github.com/nmil1484-source/the-wild-share/internal/notify"
)

var ErrNoThread = errors.New("no conversation is open")

// API is the slice of the REST client the messaging panel depends on.
type API interface {
	MyConversations(ctx context.Context) ([]models.Conversation, error)
	EquipmentMessages(ctx context.Context, equipmentID int) ([]models.Message, error)
	SendMessage(ctx context.Context, equipmentID int, message string) error
	MarkMessageRead(ctx context.Context, messageID int) error
	UnreadCount(ctx context.Context) (int, error)
}

// Panel is the messaging view state.
type Panel struct {
	api      API
	notifier notify.Notifier

	mu            sync.Mutex
	conversations []models.Conversation
	openEquipment int
	openPartner   int
	thread        []models.Message
	unread        int
	currentUserID int
}

// NewPanel creates a panel with no conversation open.
func NewPanel(messagingAPI API, notifier notify.Notifier) *Panel {
	return &Panel{api: messagingAPI, notifier: notifier}
}

// SetCurrentUser tells the panel whose inbound messages to mark read.
func (p *Panel) SetCurrentUser(userID int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.currentUserID = userID
}

// Conversations returns the conversation list in server order.
func (p *Panel) Conversations() []models.Conversation {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conversations
}

// Thread returns the open thread's messages, oldest first.
func (p *Panel) Thread() []models.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.thread
}

// Unread returns the last known total unread count.
func (p *Panel) Unread() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unread
}

// LoadConversations refetches the conversation list. The server already
// orders by most recent activity; the client preserves that order.
func (p *Panel) LoadConversations(ctx context.Context) error {
	conversations, err := p.api.MyConversations(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.conversations = nil
		return fmt.Errorf("failed to load conversations: %w", err)
	}
	p.conversations = conversations
	return nil
}

// Open selects a conversation, fetches its thread and marks the partner's
// unread messages read so the badge count drops on the next poll.
func (p *Panel) Open(ctx context.Context, conversation models.Conversation) error {
	messages, err := p.api.EquipmentMessages(ctx, conversation.EquipmentID)
	if err != nil {
		p.notifier.Error(api.ErrorMessage(err, "Failed to load messages"))
		return err
	}

	p.mu.Lock()
	p.openEquipment = conversation.EquipmentID
	p.openPartner = conversation.PartnerID
	p.thread = messages
	userID := p.currentUserID
	p.mu.Unlock()

	for _, msg := range messages {
		if msg.ReceiverID == userID && !msg.IsRead {
			if err := p.api.MarkMessageRead(ctx, msg.ID); err != nil {
				log.Printf("mark read failed for message %d: %v", msg.ID, err)
			}
		}
	}
	return p.RefreshUnread(ctx)
}

// Close deselects the open conversation.
func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.openEquipment = 0
	p.openPartner = 0
	p.thread = nil
}

// Send posts a message to the open thread, then refetches the thread, the
// conversation list and the unread count so everything shown is the server's
// view of the result.
func (p *Panel) Send(ctx context.Context, text string) error {
	p.mu.Lock()
	equipmentID := p.openEquipment
	p.mu.Unlock()
	if equipmentID == 0 {
		return ErrNoThread
	}
	if err := p.api.SendMessage(ctx, equipmentID, text); err != nil {
		p.notifier.Error(api.ErrorMessage(err, "Failed to send message"))
		return err
	}

	messages, err := p.api.EquipmentMessages(ctx, equipmentID)
	if err != nil {
		return fmt.Errorf("failed to reload thread: %w", err)
	}
	p.mu.Lock()
	p.thread = messages
	p.mu.Unlock()

	if err := p.LoadConversations(ctx); err != nil {
		return err
	}
	return p.RefreshUnread(ctx)
}

// RefreshUnread refetches the total unread count.
func (p *Panel) RefreshUnread(ctx context.Context) error {
	count, err := p.api.UnreadCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch unread count: %w", err)
	}
	p.mu.Lock()
	p.unread = count
	p.mu.Unlock()
	return nil
}

// Reset clears all messaging state, as on logout.
func (p *Panel) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.conversations = nil
	p.openEquipment = 0
	p.openPartner = 0
	p.thread = nil
	p.unread = 0
	p.currentUserID = 0
}
