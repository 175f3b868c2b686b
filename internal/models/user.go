package models

// UserType describes which side of the marketplace a user participates on.
type UserType string

const (
	UserTypeOwner  UserType = "owner"
	UserTypeRenter UserType = "renter"
	UserTypeBoth   UserType = "both"
)

// User is the server's projection of an account, cached locally as part of the session.
type User struct {
	ID              int      `json:"id"`
	Email           string   `json:"email"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Phone           string   `json:"phone,omitempty"`
	UserType        UserType `json:"user_type"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Address         string   `json:"address,omitempty"`
	City            string   `json:"city,omitempty"`
	State           string   `json:"state,omitempty"`
	ZipCode         string   `json:"zip_code,omitempty"`

	TrustLevel         string  `json:"trust_level,omitempty"` // new, bronze, silver, gold
	CompletedRentals   int     `json:"completed_rentals,omitempty"`
	IsIdentityVerified bool    `json:"is_identity_verified"`
	VerificationDate   *string `json:"verification_date,omitempty"`

	IsAdmin   bool    `json:"is_admin"`
	IsBanned  bool    `json:"is_banned,omitempty"`
	BanReason string  `json:"ban_reason,omitempty"`
	BannedAt  *string `json:"banned_at,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
}

// IsOwner reports whether the user may manage equipment listings.
func (u *User) IsOwner() bool {
	return u.UserType == UserTypeOwner || u.UserType == UserTypeBoth
}

// DisplayName is the short form shown in navigation and message threads.
func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return u.Email
	}
	return u.FirstName
}
