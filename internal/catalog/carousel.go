package catalog

import "sync"

// Carousel tracks the visible image index per equipment item. Indexes wrap
// modulo the image count in both directions.
type Carousel struct {
	mu      sync.Mutex
	indexes map[int]int
}

func NewCarousel() *Carousel {
	return &Carousel{indexes: make(map[int]int)}
}

// Index returns the current image index for an equipment item, clamped to
// the image count. Items with no images report 0.
func (c *Carousel) Index(equipmentID, totalImages int) int {
	if totalImages <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indexes[equipmentID] % totalImages
}

// Next advances to the following image and returns the new index.
func (c *Carousel) Next(equipmentID, totalImages int) int {
	if totalImages <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.indexes[equipmentID] = (c.indexes[equipmentID] + 1) % totalImages
	return c.indexes[equipmentID]
}

// Prev steps back to the preceding image and returns the new index.
func (c *Carousel) Prev(equipmentID, totalImages int) int {
	if totalImages <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.indexes[equipmentID] = (c.indexes[equipmentID] - 1 + totalImages) % totalImages
	return c.indexes[equipmentID]
}

// Reset forgets all tracked positions.
func (c *Carousel) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.indexes = make(map[int]int)
}
