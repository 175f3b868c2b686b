package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmil1484-source/the-wild-share/internal/models"
)

func testItems() []models.EquipmentItem {
	return []models.EquipmentItem{
		{ID: 1, Name: "Kayak", Description: "Two-seat touring kayak", Category: models.CategoryWater, Location: "Denver"},
		{ID: 2, Name: "Tent", Description: "Four person tent", Category: models.CategoryCamping, Location: "Boulder"},
		{ID: 3, Name: "eBike", Description: "City commuter", Category: models.CategoryBikes, Location: "Denver"},
		{ID: 4, Name: "Paddle Board", Description: "Inflatable SUP with kayak seat", Category: models.CategoryWater, Location: ""},
	}
}

func TestFilter_NoFilterMatchesEverything(t *testing.T) {
	filter := NoFilter()
	visible := Apply(testItems(), filter)
	assert.Len(t, visible, 4)
}

func TestFilter_CategoryNarrows(t *testing.T) {
	filter := NoFilter()
	filter.Category = models.CategoryWater
	visible := Apply(testItems(), filter)
	assert.Len(t, visible, 2)
	assert.Equal(t, "Kayak", visible[0].Name)
	assert.Equal(t, "Paddle Board", visible[1].Name)
}

func TestFilter_QueryIsCaseInsensitiveSubstring(t *testing.T) {
	filter := NoFilter()
	filter.Query = "kayak"
	visible := Apply(testItems(), filter)
	// Matches the Kayak item by name and the SUP by description.
	assert.Len(t, visible, 2)

	filter.Query = "KAYAK"
	assert.Len(t, Apply(testItems(), filter), 2)
}

func TestFilter_QueryMatchesLocation(t *testing.T) {
	filter := NoFilter()
	filter.Query = "boulder"
	visible := Apply(testItems(), filter)
	assert.Len(t, visible, 1)
	assert.Equal(t, "Tent", visible[0].Name)
}

func TestFilter_ConjunctiveAcrossAxes(t *testing.T) {
	filter := NoFilter()
	filter.Category = models.CategoryWater
	filter.Query = "kayak"
	filter.Location = "Denver"
	visible := Apply(testItems(), filter)
	assert.Len(t, visible, 1)
	assert.Equal(t, "Kayak", visible[0].Name)
}

func TestFilter_NoMatchYieldsEmpty(t *testing.T) {
	filter := NoFilter()
	filter.Query = "snowmobile"
	assert.Empty(t, Apply(testItems(), filter))
}

func TestFilter_ApplyPreservesOrder(t *testing.T) {
	filter := NoFilter()
	filter.Location = "Denver"
	visible := Apply(testItems(), filter)
	assert.Equal(t, []int{1, 3}, []int{visible[0].ID, visible[1].ID})
}

func TestLocations_DedupFirstSeenOrder(t *testing.T) {
	locations := Locations(testItems())
	assert.Equal(t, []string{"Denver", "Boulder"}, locations)
}

func TestLocations_IgnoresEmpty(t *testing.T) {
	locations := Locations([]models.EquipmentItem{{ID: 1, Location: ""}})
	assert.Empty(t, locations)
}
