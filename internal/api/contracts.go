package api

import "fmt"

// Contract documents are served as downloadable pages opened directly in a
// browser context, so only their URLs are exposed here.

// RentalAgreementURL returns the rental agreement document URL for a booking.
func (c *Client) RentalAgreementURL(bookingID int) string {
	return fmt.Sprintf("%s/contracts/rental-agreement/%d", c.baseURL, bookingID)
}

// LiabilityWaiverURL returns the liability waiver document URL for a booking.
func (c *Client) LiabilityWaiverURL(bookingID int) string {
	return fmt.Sprintf("%s/contracts/liability-waiver/%d", c.baseURL, bookingID)
}

// AllContractsURL returns the combined contract bundle URL for a booking.
func (c *Client) AllContractsURL(bookingID int) string {
	return fmt.Sprintf("%s/contracts/all/%d", c.baseURL, bookingID)
}
