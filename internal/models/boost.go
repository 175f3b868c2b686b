package models

// BoostType identifies a paid-visibility product.
type BoostType string

const (
	Boost7Days       BoostType = "boost_7_days"
	Boost30Days      BoostType = "boost_30_days"
	HomepageFeatured BoostType = "homepage_featured"
)

// BoostOption is one purchasable boost product. Pricing is server-owned and
// fetched, never duplicated client-side.
type BoostOption struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days"`
	Description  string  `json:"description,omitempty"`
}

// BoostStatus reports the current boost state of one equipment item.
type BoostStatus struct {
	EquipmentID               int     `json:"equipment_id"`
	IsBoosted                 bool    `json:"is_boosted"`
	BoostExpiresAt            *string `json:"boost_expires_at,omitempty"`
	IsHomepageFeatured        bool    `json:"is_homepage_featured"`
	HomepageFeaturedExpiresAt *string `json:"homepage_featured_expires_at,omitempty"`
}
