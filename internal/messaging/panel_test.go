package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

type mockMessagingAPI struct {
	mock.Mock
}

func (m *mockMessagingAPI) MyConversations(ctx context.Context) ([]models.Conversation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Conversation), args.Error(1)
}

func (m *mockMessagingAPI) EquipmentMessages(ctx context.Context, equipmentID int) ([]models.Message, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *mockMessagingAPI) SendMessage(ctx context.Context, equipmentID int, message string) error {
	return m.Called(ctx, equipmentID, message).Error(0)
}

func (m *mockMessagingAPI) MarkMessageRead(ctx context.Context, messageID int) error {
	return m.Called(ctx, messageID).Error(0)
}

func (m *mockMessagingAPI) UnreadCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type noopNotifier struct{}

func (noopNotifier) Info(string)  {}
func (noopNotifier) Error(string) {}

func conversation() models.Conversation {
	return models.Conversation{EquipmentID: 5, PartnerID: 2, PartnerName: "Bea", EquipmentName: "Tent"}
}

func TestPanel_LoadConversationsKeepsServerOrder(t *testing.T) {
	messagingAPI := new(mockMessagingAPI)
	messagingAPI.On("MyConversations", mock.Anything).Return([]models.Conversation{
		{EquipmentID: 9, PartnerID: 1},
		{EquipmentID: 5, PartnerID: 2},
	}, nil)

	panel := NewPanel(messagingAPI, noopNotifier{})
	require.NoError(t, panel.LoadConversations(context.Background()))
	conversations := panel.Conversations()
	require.Len(t, conversations, 2)
	assert.Equal(t, 9, conversations[0].EquipmentID)
	assert.Equal(t, 5, conversations[1].EquipmentID)
}

func TestPanel_OpenMarksInboundUnreadOnly(t *testing.T) {
	messagingAPI := new(mockMessagingAPI)
	messagingAPI.On("EquipmentMessages", mock.Anything, 5).Return([]models.Message{
		{ID: 1, ReceiverID: 7, IsRead: false}, // inbound unread: marked
		{ID: 2, ReceiverID: 7, IsRead: true},  // inbound already read: skipped
		{ID: 3, ReceiverID: 2, IsRead: false}, // outbound: skipped
	}, nil)
	messagingAPI.On("MarkMessageRead", mock.Anything, 1).Return(nil)
	messagingAPI.On("UnreadCount", mock.Anything).Return(0, nil)

	panel := NewPanel(messagingAPI, noopNotifier{})
	panel.SetCurrentUser(7)
	require.NoError(t, panel.Open(context.Background(), conversation()))
	assert.Len(t, panel.Thread(), 3)
	messagingAPI.AssertExpectations(t)
	messagingAPI.AssertNumberOfCalls(t, "MarkMessageRead", 1)
}

func TestPanel_SendRefetchesEverything(t *testing.T) {
	messagingAPI := new(mockMessagingAPI)
	messagingAPI.On("EquipmentMessages", mock.Anything, 5).Return([]models.Message{}, nil).Once()
	messagingAPI.On("UnreadCount", mock.Anything).Return(0, nil).Once()

	panel := NewPanel(messagingAPI, noopNotifier{})
	panel.SetCurrentUser(7)
	require.NoError(t, panel.Open(context.Background(), conversation()))

	messagingAPI.On("SendMessage", mock.Anything, 5, "is it available?").Return(nil)
	messagingAPI.On("EquipmentMessages", mock.Anything, 5).Return([]models.Message{
		{ID: 10, SenderID: 7, Message: "is it available?"},
	}, nil).Once()
	messagingAPI.On("MyConversations", mock.Anything).Return([]models.Conversation{conversation()}, nil)
	messagingAPI.On("UnreadCount", mock.Anything).Return(0, nil)

	require.NoError(t, panel.Send(context.Background(), "is it available?"))
	// The thread shows the server's copy, not an optimistic append.
	require.Len(t, panel.Thread(), 1)
	assert.Equal(t, 10, panel.Thread()[0].ID)
	messagingAPI.AssertExpectations(t)
}

func TestPanel_SendWithoutOpenThread(t *testing.T) {
	panel := NewPanel(new(mockMessagingAPI), noopNotifier{})
	assert.ErrorIs(t, panel.Send(context.Background(), "hi"), ErrNoThread)
}

func TestPanel_SendFailureLeavesThreadUntouched(t *testing.T) {
	messagingAPI := new(mockMessagingAPI)
	messagingAPI.On("EquipmentMessages", mock.Anything, 5).Return([]models.Message{{ID: 1}}, nil).Once()
	messagingAPI.On("UnreadCount", mock.Anything).Return(1, nil).Once()

	panel := NewPanel(messagingAPI, noopNotifier{})
	require.NoError(t, panel.Open(context.Background(), conversation()))

	messagingAPI.On("SendMessage", mock.Anything, 5, "hi").Return(errors.New("server down"))
	require.Error(t, panel.Send(context.Background(), "hi"))
	assert.Len(t, panel.Thread(), 1)
}

func TestPanel_RefreshUnread(t *testing.T) {
	messagingAPI := new(mockMessagingAPI)
	messagingAPI.On("UnreadCount", mock.Anything).Return(4, nil)

	panel := NewPanel(messagingAPI, noopNotifier{})
	require.NoError(t, panel.RefreshUnread(context.Background()))
	assert.Equal(t, 4, panel.Unread())
}

func TestPanel_ResetClearsState(t *testing.T) {
	messagingAPI := new(mockMessagingAPI)
	messagingAPI.On("MyConversations", mock.Anything).Return([]models.Conversation{conversation()}, nil)
	messagingAPI.On("UnreadCount", mock.Anything).Return(2, nil)

	panel := NewPanel(messagingAPI, noopNotifier{})
	require.NoError(t, panel.LoadConversations(context.Background()))
	require.NoError(t, panel.RefreshUnread(context.Background()))

	panel.Reset()
	assert.Empty(t, panel.Conversations())
	assert.Empty(t, panel.Thread())
	assert.Equal(t, 0, panel.Unread())
}
