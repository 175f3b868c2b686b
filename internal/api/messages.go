package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// SendMessage sends a message in the thread for one equipment item.
func (c *Client) SendMessage(ctx context.Context, equipmentID int, message string) error {
	body := map[string]string{"message": message}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/equipment/%d/messages", equipmentID), nil, body, nil)
}

// EquipmentMessages fetches the full thread for one equipment item.
func (c *Client) EquipmentMessages(ctx context.Context, equipmentID int) ([]models.Message, error) {
	var messages []models.Message
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/equipment/%d/messages", equipmentID), nil, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// MyConversations fetches the aggregated conversation list, in server order.
func (c *Client) MyConversations(ctx context.Context) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := c.do(ctx, http.MethodGet, "/messages", nil, nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// UnreadCount fetches the total unread message count for the current user.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		UnreadCount int `json:"unread_count"`
	}
	if err := c.do(ctx, http.MethodGet, "/messages/unread-count", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.UnreadCount, nil
}

// MarkMessageRead marks one received message as read.
func (c *Client) MarkMessageRead(ctx context.Context, messageID int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/messages/%d/read", messageID), nil, nil, nil)
}
