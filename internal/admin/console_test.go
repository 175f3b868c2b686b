package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

type mockAdminAPI struct {
	mock.Mock
}

func (m *mockAdminAPI) DashboardStats(ctx context.Context) (*models.DashboardStats, *models.RecentActivity, error) {
	args := m.Called(ctx)
	var stats *models.DashboardStats
	var activity *models.RecentActivity
	if args.Get(0) != nil {
		stats = args.Get(0).(*models.DashboardStats)
	}
	if args.Get(1) != nil {
		activity = args.Get(1).(*models.RecentActivity)
	}
	return stats, activity, args.Error(2)
}

func (m *mockAdminAPI) AdminUsers(ctx context.Context, search string) ([]models.User, *models.Page, error) {
	args := m.Called(ctx, search)
	var users []models.User
	var page *models.Page
	if args.Get(0) != nil {
		users = args.Get(0).([]models.User)
	}
	if args.Get(1) != nil {
		page = args.Get(1).(*models.Page)
	}
	return users, page, args.Error(2)
}

func (m *mockAdminAPI) BanUser(ctx context.Context, userID int, reason string) error {
	return m.Called(ctx, userID, reason).Error(0)
}

func (m *mockAdminAPI) UnbanUser(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockAdminAPI) AdminDeleteUser(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockAdminAPI) AdminEquipment(ctx context.Context, status models.ApprovalStatus, search string) ([]models.EquipmentItem, *models.Page, error) {
	args := m.Called(ctx, status, search)
	var equipment []models.EquipmentItem
	var page *models.Page
	if args.Get(0) != nil {
		equipment = args.Get(0).([]models.EquipmentItem)
	}
	if args.Get(1) != nil {
		page = args.Get(1).(*models.Page)
	}
	return equipment, page, args.Error(2)
}

func (m *mockAdminAPI) ApproveEquipment(ctx context.Context, equipmentID int) error {
	return m.Called(ctx, equipmentID).Error(0)
}

func (m *mockAdminAPI) RejectEquipment(ctx context.Context, equipmentID int, reason string) error {
	return m.Called(ctx, equipmentID, reason).Error(0)
}

func (m *mockAdminAPI) AdminDeleteEquipment(ctx context.Context, equipmentID int) error {
	return m.Called(ctx, equipmentID).Error(0)
}

func (m *mockAdminAPI) AdminBookings(ctx context.Context) ([]models.Booking, *models.Page, error) {
	args := m.Called(ctx)
	var bookings []models.Booking
	var page *models.Page
	if args.Get(0) != nil {
		bookings = args.Get(0).([]models.Booking)
	}
	if args.Get(1) != nil {
		page = args.Get(1).(*models.Page)
	}
	return bookings, page, args.Error(2)
}

type stubGate struct {
	admin bool
}

func (s *stubGate) IsAdmin() bool { return s.admin }

type stubConfirmer struct {
	answer bool
}

func (s *stubConfirmer) Confirm(prompt string) bool { return s.answer }

type stubPrompter struct {
	reason string
	ok     bool
}

func (s *stubPrompter) Reason(prompt string) (string, bool) { return s.reason, s.ok }

type noopNotifier struct{}

func (noopNotifier) Info(string)  {}
func (noopNotifier) Error(string) {}

func newAdminConsole(adminAPI *mockAdminAPI) *Console {
	return NewConsole(adminAPI, &stubGate{admin: true}, &stubConfirmer{answer: true},
		&stubPrompter{reason: "spam", ok: true}, noopNotifier{})
}

func TestConsole_GateBlocksNonAdmins(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	console := NewConsole(adminAPI, &stubGate{admin: false}, &stubConfirmer{}, &stubPrompter{}, noopNotifier{})

	assert.ErrorIs(t, console.SelectTab(context.Background(), TabUsers), ErrNotAdmin)
	adminAPI.AssertNotCalled(t, "AdminUsers", mock.Anything, mock.Anything)
}

func TestConsole_TabLoadsLazilyOnce(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	adminAPI.On("AdminUsers", mock.Anything, "").
		Return([]models.User{{ID: 1}}, &models.Page{Total: 1, Pages: 1, CurrentPage: 1}, nil).Once()

	console := newAdminConsole(adminAPI)
	require.NoError(t, console.SelectTab(context.Background(), TabUsers))
	require.NoError(t, console.SelectTab(context.Background(), TabUsers))

	users, page := console.Users()
	assert.Len(t, users, 1)
	assert.Equal(t, 1, page.Total)
	adminAPI.AssertNumberOfCalls(t, "AdminUsers", 1)
}

func TestConsole_SearchChangeMarksTabDirty(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	adminAPI.On("AdminUsers", mock.Anything, "").Return([]models.User{{ID: 1}, {ID: 2}}, nil, nil).Once()
	adminAPI.On("AdminUsers", mock.Anything, "bea").Return([]models.User{{ID: 2}}, nil, nil).Once()

	console := newAdminConsole(adminAPI)
	require.NoError(t, console.SelectTab(context.Background(), TabUsers))

	console.SetUserSearch("bea")
	require.NoError(t, console.SelectTab(context.Background(), TabUsers))
	users, _ := console.Users()
	assert.Len(t, users, 1)
	adminAPI.AssertExpectations(t)
}

func TestConsole_UnchangedSearchStaysClean(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	adminAPI.On("AdminUsers", mock.Anything, "").Return([]models.User{}, nil, nil).Once()

	console := newAdminConsole(adminAPI)
	require.NoError(t, console.SelectTab(context.Background(), TabUsers))
	console.SetUserSearch("")
	require.NoError(t, console.SelectTab(context.Background(), TabUsers))
	adminAPI.AssertNumberOfCalls(t, "AdminUsers", 1)
}

func TestConsole_EquipmentDefaultsToPendingQueue(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	adminAPI.On("AdminEquipment", mock.Anything, models.ApprovalPending, "").
		Return([]models.EquipmentItem{{ID: 3, ApprovalStatus: models.ApprovalPending}}, nil, nil)

	console := newAdminConsole(adminAPI)
	require.NoError(t, console.SelectTab(context.Background(), TabEquipment))
	equipment, _ := console.Equipment()
	assert.Len(t, equipment, 1)
	adminAPI.AssertExpectations(t)
}

func TestConsole_BanCollectsReasonAndReloads(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	adminAPI.On("AdminUsers", mock.Anything, "").Return([]models.User{{ID: 4}}, nil, nil)
	adminAPI.On("BanUser", mock.Anything, 4, "spam").Return(nil)

	console := newAdminConsole(adminAPI)
	require.NoError(t, console.SelectTab(context.Background(), TabUsers))
	require.NoError(t, console.BanUser(context.Background(), 4))

	adminAPI.AssertCalled(t, "BanUser", mock.Anything, 4, "spam")
	// Initial lazy load plus the post-mutation reload.
	adminAPI.AssertNumberOfCalls(t, "AdminUsers", 2)
}

func TestConsole_BanAbortedPromptIsNoOp(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	console := NewConsole(adminAPI, &stubGate{admin: true}, &stubConfirmer{answer: true},
		&stubPrompter{ok: false}, noopNotifier{})

	require.NoError(t, console.BanUser(context.Background(), 4))
	adminAPI.AssertNotCalled(t, "BanUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestConsole_DeleteDeclinedIsNoOp(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	console := NewConsole(adminAPI, &stubGate{admin: true}, &stubConfirmer{answer: false},
		&stubPrompter{reason: "x", ok: true}, noopNotifier{})

	require.NoError(t, console.DeleteUser(context.Background(), 4))
	require.NoError(t, console.DeleteEquipment(context.Background(), 4))
	adminAPI.AssertNotCalled(t, "AdminDeleteUser", mock.Anything, mock.Anything)
	adminAPI.AssertNotCalled(t, "AdminDeleteEquipment", mock.Anything, mock.Anything)
}

func TestConsole_ApproveReloadsActiveTab(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	adminAPI.On("AdminEquipment", mock.Anything, models.ApprovalPending, "").
		Return([]models.EquipmentItem{{ID: 3}}, nil, nil)
	adminAPI.On("ApproveEquipment", mock.Anything, 3).Return(nil)

	console := newAdminConsole(adminAPI)
	require.NoError(t, console.SelectTab(context.Background(), TabEquipment))
	require.NoError(t, console.ApproveEquipment(context.Background(), 3))
	adminAPI.AssertNumberOfCalls(t, "AdminEquipment", 2)
}

func TestConsole_OverviewStats(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	adminAPI.On("DashboardStats", mock.Anything).
		Return(&models.DashboardStats{TotalUsers: 10}, &models.RecentActivity{}, nil)

	console := newAdminConsole(adminAPI)
	require.NoError(t, console.SelectTab(context.Background(), TabOverview))
	stats, activity := console.Stats()
	require.NotNil(t, stats)
	assert.Equal(t, 10, stats.TotalUsers)
	assert.NotNil(t, activity)
}

func TestConsole_ResetForgetsDatasets(t *testing.T) {
	adminAPI := new(mockAdminAPI)
	adminAPI.On("AdminUsers", mock.Anything, "").Return([]models.User{{ID: 1}}, nil, nil).Twice()

	console := newAdminConsole(adminAPI)
	require.NoError(t, console.SelectTab(context.Background(), TabUsers))

	console.Reset()
	users, _ := console.Users()
	assert.Empty(t, users)
	assert.Equal(t, TabOverview, console.ActiveTab())

	// Selecting again reloads from the server.
	require.NoError(t, console.SelectTab(context.Background(), TabUsers))
	adminAPI.AssertExpectations(t)
}
