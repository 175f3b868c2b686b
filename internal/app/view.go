package app

// View identifies one top-level screen.
type View int

const (
	ViewHome View = iota
	ViewBrowse
	ViewBookings
	ViewMessages
	ViewMyEquipment
	ViewProfile
	ViewPricing
	ViewAdmin
	ViewAuth
	ViewTerms
	ViewPrivacy
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewBrowse:
		return "browse"
	case ViewBookings:
		return "bookings"
	case ViewMessages:
		return "messages"
	case ViewMyEquipment:
		return "my-equipment"
	case ViewProfile:
		return "profile"
	case ViewPricing:
		return "pricing"
	case ViewAdmin:
		return "admin"
	case ViewAuth:
		return "auth"
	case ViewTerms:
		return "terms"
	case ViewPrivacy:
		return "privacy"
	default:
		return "unknown"
	}
}

// AuthMode selects which form the auth view shows.
type AuthMode int

const (
	AuthModeLogin AuthMode = iota
	AuthModeRegister
	AuthModeForgotPassword
	AuthModeResetPassword
)

func (m AuthMode) String() string {
	switch m {
	case AuthModeLogin:
		return "login"
	case AuthModeRegister:
		return "register"
	case AuthModeForgotPassword:
		return "forgot-password"
	case AuthModeResetPassword:
		return "reset-password"
	default:
		return "unknown"
	}
}
