package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// EquipmentLister is the slice of the REST client the catalog depends on.
type EquipmentLister interface {
	ListEquipment(ctx context.Context, category models.Category) ([]models.EquipmentItem, error)
}

// Service owns the last-fetched equipment collection. Category changes
// refetch from the server (server-side category scoping); query and location
// changes filter the held collection with no network round trip.
type Service struct {
	api EquipmentLister

	mu     sync.RWMutex
	items  []models.EquipmentItem
	filter Filter
}

// NewService creates a catalog service with all filters at their no-op value.
func NewService(api EquipmentLister) *Service {
	return &Service{api: api, filter: NoFilter()}
}

// Refresh refetches the full collection for the current category. A fetch
// failure empties the collection rather than keeping stale results.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.RLock()
	category := s.filter.Category
	s.mu.RUnlock()

	items, err := s.api.ListEquipment(ctx, category)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.items = nil
		return fmt.Errorf("failed to load equipment: %w", err)
	}
	s.items = items
	return nil
}

// SetCategory changes the category filter and refetches. Only known
// categories and "all" are accepted.
func (s *Service) SetCategory(ctx context.Context, category models.Category) error {
	if category != models.CategoryAll && !models.ValidCategory(category) {
		return fmt.Errorf("unknown category %q", category)
	}
	s.mu.Lock()
	s.filter.Category = category
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// SetQuery changes the free-text filter. Client-side only.
func (s *Service) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Query = query
}

// SetLocation changes the location filter. Client-side only.
func (s *Service) SetLocation(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Location = location
}

// Filter returns the current filter combination.
func (s *Service) Filter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Items returns the full unfiltered collection as last fetched.
func (s *Service) Items() []models.EquipmentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

// Visible returns the ordered subset passing the current filters.
func (s *Service) Visible() []models.EquipmentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Apply(s.items, s.filter)
}

// Locations returns the location facet over the unfiltered collection.
func (s *Service) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Locations(s.items)
}

// Clear drops the held collection and resets all filters, as on logout.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.filter = NoFilter()
}
