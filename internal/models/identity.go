package models

// VerificationSession is the hand-off to the external identity verification flow.
// The URL opens in a new browser context; the client only polls status afterwards.
type VerificationSession struct {
	URL    string `json:"url"`
	Status string `json:"status"`
}

// VerificationStatus is the current identity verification state for the user.
type VerificationStatus struct {
	Status     string `json:"status"` // not_started, pending, verified, failed
	VerifiedAt string `json:"verified_at,omitempty"`
}
