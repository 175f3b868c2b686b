package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/nmil1484-source/the-wild-share/internal/api"
)

var (
	ErrRatingRequired   = errors.New("please rate both the equipment and the owner")
	ErrRatingOutOfRange = errors.New("ratings must be between 1 and 5")
)

func validRating(r int) bool { return r >= 1 && r <= 5 }

func validateReview(payload api.ReviewPayload) error {
	if payload.EquipmentRating == 0 || payload.OwnerRating == 0 {
		return ErrRatingRequired
	}
	if !validRating(payload.EquipmentRating) || !validRating(payload.OwnerRating) {
		return ErrRatingOutOfRange
	}
	return nil
}

// SubmitReview checks eligibility with the server, then creates the review
// and refreshes the booking list so the reviewed flag is authoritative.
func (f *Flow) SubmitReview(ctx context.Context, bookingID int, payload api.ReviewPayload) error {
	if err := validateReview(payload); err != nil {
		f.notifier.Error(err.Error())
		return err
	}
	ok, reason, err := f.api.CanReview(ctx, bookingID)
	if err != nil {
		f.notifier.Error(api.ErrorMessage(err, "Failed to check review eligibility"))
		return err
	}
	if !ok {
		if reason == "" {
			reason = "This booking cannot be reviewed"
		}
		f.notifier.Error(reason)
		return fmt.Errorf("booking %d not reviewable: %s", bookingID, reason)
	}
	if err := f.api.CreateReview(ctx, bookingID, payload); err != nil {
		f.notifier.Error(api.ErrorMessage(err, "Failed to submit review"))
		return err
	}
	f.notifier.Info("Review submitted, thank you!")
	return f.LoadMyBookings(ctx)
}

// ContractURLs returns the rental agreement, liability waiver and combined
// contract document URLs for a booking.
func (f *Flow) ContractURLs(bookingID int) (agreement, waiver, all string) {
	return f.api.RentalAgreementURL(bookingID),
		f.api.LiabilityWaiverURL(bookingID),
		f.api.AllContractsURL(bookingID)
}
