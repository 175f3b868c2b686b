package booking

import (
	"context"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/models"
)

// UpdateStatus transitions a booking (owner approving or declining a request,
// either party marking it complete) and re-reads the booking list.
func (f *Flow) UpdateStatus(ctx context.Context, bookingID int, status models.BookingStatus) error {
	if err := f.api.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		f.notifier.Error(api.ErrorMessage(err, "Failed to update booking"))
		return err
	}
	return f.LoadMyBookings(ctx)
}

// RefundDeposit asks the server to release the security deposit back to the
// renter after a completed rental.
func (f *Flow) RefundDeposit(ctx context.Context, bookingID int) error {
	if err := f.api.RefundDeposit(ctx, bookingID); err != nil {
		f.notifier.Error(api.ErrorMessage(err, "Failed to refund deposit"))
		return err
	}
	f.notifier.Info("Deposit refunded")
	return f.LoadMyBookings(ctx)
}
