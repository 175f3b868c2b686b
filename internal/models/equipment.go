package models

// Category is the closed set of equipment categories.
type Category string

const (
	CategoryBikes   Category = "bikes"
	CategoryWater   Category = "water"
	CategoryCamping Category = "camping"
	CategoryPower   Category = "power"
	CategoryGear    Category = "gear"

	// CategoryAll is the filter value meaning "no category scoping".
	// It is never a category of an item.
	CategoryAll Category = "all"
)

// Categories lists the categories an item may carry, in display order.
var Categories = []Category{CategoryBikes, CategoryWater, CategoryCamping, CategoryPower, CategoryGear}

// ValidCategory reports whether c is an item category (not a filter value).
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ApprovalStatus is the moderation state of a listing.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// OwnerSummary is the public owner info attached to a listing.
type OwnerSummary struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	ProfileImageURL    string `json:"profile_image_url,omitempty"`
	TrustLevel         string `json:"trust_level,omitempty"`
	IsIdentityVerified bool   `json:"is_identity_verified"`
	MemberSince        string `json:"member_since,omitempty"`
}

// EquipmentItem is a rentable piece of equipment as returned by the server.
type EquipmentItem struct {
	ID           int      `json:"id"`
	OwnerID      int      `json:"owner_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	DailyPrice   float64  `json:"daily_price"`
	WeeklyPrice  *float64 `json:"weekly_price,omitempty"`
	MonthlyPrice *float64 `json:"monthly_price,omitempty"`
	CapacitySpec string   `json:"capacity_spec,omitempty"`

	// ImageURL is the legacy single image; ImageURLs is the ordered gallery.
	ImageURL  string   `json:"image_url,omitempty"`
	ImageURLs []string `json:"image_urls,omitempty"`

	Location        string   `json:"location,omitempty"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty"`
	IsAvailable     bool     `json:"is_available"`
	AverageRating   float64  `json:"average_rating,omitempty"`

	ApprovalStatus  ApprovalStatus `json:"approval_status,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`

	IsBoosted                  bool    `json:"is_boosted,omitempty"`
	BoostExpiresAt             *string `json:"boost_expires_at,omitempty"`
	IsHomepageFeatured         bool    `json:"is_homepage_featured,omitempty"`
	HomepageFeaturedExpiresAt  *string `json:"homepage_featured_expires_at,omitempty"`

	CreatedAt string        `json:"created_at,omitempty"`
	Owner     *OwnerSummary `json:"owner,omitempty"`
}

// Images returns the gallery, falling back to the legacy single image.
func (e *EquipmentItem) Images() []string {
	if len(e.ImageURLs) > 0 {
		return e.ImageURLs
	}
	if e.ImageURL != "" {
		return []string{e.ImageURL}
	}
	return nil
}
