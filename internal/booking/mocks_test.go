package booking

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/models"
)

type mockBookingAPI struct {
	mock.Mock
}

func (m *mockBookingAPI) CreateBooking(ctx context.Context, equipmentID int, startDate, endDate string) (*models.Booking, error) {
	args := m.Called(ctx, equipmentID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockBookingAPI) MyBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingAPI) CreatePaymentIntent(ctx context.Context, bookingID int) (*models.PaymentIntent, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentIntent), args.Error(1)
}

func (m *mockBookingAPI) ConfirmPayment(ctx context.Context, paymentIntentID string) error {
	return m.Called(ctx, paymentIntentID).Error(0)
}

func (m *mockBookingAPI) UpdateBookingStatus(ctx context.Context, id int, status models.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingAPI) RefundDeposit(ctx context.Context, bookingID int) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *mockBookingAPI) CanReview(ctx context.Context, bookingID int) (bool, string, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockBookingAPI) CreateReview(ctx context.Context, bookingID int, payload api.ReviewPayload) error {
	return m.Called(ctx, bookingID, payload).Error(0)
}

func (m *mockBookingAPI) RentalAgreementURL(bookingID int) string {
	return fmt.Sprintf("https://api.test/contracts/rental-agreement/%d", bookingID)
}

func (m *mockBookingAPI) LiabilityWaiverURL(bookingID int) string {
	return fmt.Sprintf("https://api.test/contracts/liability-waiver/%d", bookingID)
}

func (m *mockBookingAPI) AllContractsURL(bookingID int) string {
	return fmt.Sprintf("https://api.test/contracts/all/%d", bookingID)
}

type stubAuth struct {
	authenticated bool
}

func (s *stubAuth) IsAuthenticated() bool { return s.authenticated }

type noopNotifier struct{}

func (noopNotifier) Info(string)  {}
func (noopNotifier) Error(string) {}
