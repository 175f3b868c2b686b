package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/models"
)

func TestSubmitReview_Success(t *testing.T) {
	bookingAPI := new(mockBookingAPI)
	payload := api.ReviewPayload{EquipmentRating: 5, OwnerRating: 4, EquipmentReview: "Great kayak"}
	bookingAPI.On("CanReview", mock.Anything, 3).Return(true, "", nil)
	bookingAPI.On("CreateReview", mock.Anything, 3, payload).Return(nil)
	bookingAPI.On("MyBookings", mock.Anything).
		Return([]models.Booking{{ID: 3, HasReview: true}}, nil)

	flow := NewFlow(bookingAPI, &stubAuth{authenticated: true}, noopNotifier{})
	require.NoError(t, flow.SubmitReview(context.Background(), 3, payload))
	assert.True(t, flow.MyBookings()[0].HasReview)
	bookingAPI.AssertExpectations(t)
}

func TestSubmitReview_IneligibleSurfacesServerReason(t *testing.T) {
	bookingAPI := new(mockBookingAPI)
	bookingAPI.On("CanReview", mock.Anything, 3).Return(false, "Booking not completed yet", nil)

	flow := NewFlow(bookingAPI, &stubAuth{authenticated: true}, noopNotifier{})
	err := flow.SubmitReview(context.Background(), 3, api.ReviewPayload{EquipmentRating: 5, OwnerRating: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Booking not completed yet")
	bookingAPI.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReview_RatingBounds(t *testing.T) {
	bookingAPI := new(mockBookingAPI)
	flow := NewFlow(bookingAPI, &stubAuth{authenticated: true}, noopNotifier{})

	err := flow.SubmitReview(context.Background(), 3, api.ReviewPayload{EquipmentRating: 0, OwnerRating: 5})
	assert.ErrorIs(t, err, ErrRatingRequired)

	err = flow.SubmitReview(context.Background(), 3, api.ReviewPayload{EquipmentRating: 6, OwnerRating: 5})
	assert.ErrorIs(t, err, ErrRatingOutOfRange)

	bookingAPI.AssertNotCalled(t, "CanReview", mock.Anything, mock.Anything)
}
