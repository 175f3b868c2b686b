package listing

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/models"
)

type mockEquipmentAPI struct {
	mock.Mock
}

func (m *mockEquipmentAPI) CreateEquipment(ctx context.Context, payload api.EquipmentPayload) (*models.EquipmentItem, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EquipmentItem), args.Error(1)
}

func (m *mockEquipmentAPI) UpdateEquipment(ctx context.Context, id int, payload api.EquipmentPayload) (*models.EquipmentItem, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EquipmentItem), args.Error(1)
}

func (m *mockEquipmentAPI) DeleteEquipment(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEquipmentAPI) MyEquipment(ctx context.Context) ([]models.EquipmentItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EquipmentItem), args.Error(1)
}

func (m *mockEquipmentAPI) UploadImages(ctx context.Context, files []api.UploadFile) ([]string, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockEquipmentAPI) BoostPricing(ctx context.Context) (map[models.BoostType]models.BoostOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.BoostType]models.BoostOption), args.Error(1)
}

func (m *mockEquipmentAPI) PurchaseBoost(ctx context.Context, equipmentID int, boostType models.BoostType) (string, error) {
	args := m.Called(ctx, equipmentID, boostType)
	return args.String(0), args.Error(1)
}

func (m *mockEquipmentAPI) ConfirmBoost(ctx context.Context, sessionID string) (*api.BoostActivation, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.BoostActivation), args.Error(1)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type stubConfirmer struct {
	answer bool
	asked  int
}

func (s *stubConfirmer) Confirm(prompt string) bool {
	s.asked++
	return s.answer
}

type noopNotifier struct{}

func (noopNotifier) Info(string)  {}
func (noopNotifier) Error(string) {}

// memPreviews is an in-memory preview store for batch tests.
type memPreviews struct {
	mu      sync.Mutex
	next    int
	handles map[string]bool
	failAt  int // 1-based creation index that fails; 0 means never
	created int
}

func newMemPreviews() *memPreviews {
	return &memPreviews{handles: map[string]bool{}}
}

func (s *memPreviews) Create(filename, mimeType string, content []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created++
	if s.failAt != 0 && s.created == s.failAt {
		return "", fmt.Errorf("preview store full")
	}
	s.next++
	handle := fmt.Sprintf("preview-%d-%s", s.next, filename)
	s.handles[handle] = true
	return handle, nil
}

func (s *memPreviews) Remove(handle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.handles[handle] {
		return fmt.Errorf("no such preview %s", handle)
	}
	delete(s.handles, handle)
	return nil
}

func (s *memPreviews) live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}
