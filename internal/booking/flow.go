// Package booking drives the date-selection, draft-creation and checkout
// hand-off flow. The server is authoritative for all derived amounts; the
// client validates dates and sequences the stages.
package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nmil1484-source/the-wild-share/internal/api"
	"github.com/nmil1484-source/the-wild-share/internal/models"
	"github.com/nmil1484-source/the-wild-share/internal/notify"
)

// Stage is the client-side checkout stage.
type Stage int

const (
	StageIdle Stage = iota
	StageDatesSelected
	StageDraftCreated
	StagePaymentPending
	StageConfirmed
	StageCancelled
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageDatesSelected:
		return "dates-selected"
	case StageDraftCreated:
		return "draft-created"
	case StagePaymentPending:
		return "payment-pending"
	case StageConfirmed:
		return "confirmed"
	case StageCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Client-side precondition failures.
var (
	ErrAuthRequired   = errors.New("please sign in to book equipment")
	ErrMissingDates   = errors.New("please select both start and end dates")
	ErrEndBeforeStart = errors.New("end date cannot be before start date")
	ErrStartInPast    = errors.New("start date cannot be before today")
	ErrWrongStage     = errors.New("operation not valid in current booking stage")
)

const dateLayout = "2006-01-02"

// ValidateDateRange checks both dates are present, end ≥ start and
// start ≥ today, at date precision.
func ValidateDateRange(startDate, endDate string, now time.Time) error {
	if startDate == "" || endDate == "" {
		return ErrMissingDates
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return ErrEndBeforeStart
	}
	today, _ := time.Parse(dateLayout, now.Format(dateLayout))
	if start.Before(today) {
		return ErrStartInPast
	}
	return nil
}

// API is the slice of the REST client the booking flow depends on.
type API interface {
	CreateBooking(ctx context.Context, equipmentID int, startDate, endDate string) (*models.Booking, error)
	MyBookings(ctx context.Context) ([]models.Booking, error)
	CreatePaymentIntent(ctx context.Context, bookingID int) (*models.PaymentIntent, error)
	ConfirmPayment(ctx context.Context, paymentIntentID string) error
	UpdateBookingStatus(ctx context.Context, id int, status models.BookingStatus) error
	RefundDeposit(ctx context.Context, bookingID int) error
	CanReview(ctx context.Context, bookingID int) (bool, string, error)
	CreateReview(ctx context.Context, bookingID int, payload api.ReviewPayload) error
	RentalAgreementURL(bookingID int) string
	LiabilityWaiverURL(bookingID int) string
	AllContractsURL(bookingID int) string
}

// AuthChecker reports whether a session is active.
type AuthChecker interface {
	IsAuthenticated() bool
}

// Flow is one booking/checkout attempt plus the user's booking list.
type Flow struct {
	api      API
	session  AuthChecker
	notifier notify.Notifier

	mu         sync.Mutex
	stage      Stage
	equipment  *models.EquipmentItem
	startDate  string
	endDate    string
	draft      *models.Booking
	intent     *models.PaymentIntent
	myBookings []models.Booking
	submitting bool
}

// NewFlow creates an idle booking flow.
func NewFlow(bookingAPI API, session AuthChecker, notifier notify.Notifier) *Flow {
	return &Flow{api: bookingAPI, session: session, notifier: notifier}
}

// Stage returns the current checkout stage.
func (f *Flow) Stage() Stage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stage
}

// Draft returns the server-created booking draft, or nil.
func (f *Flow) Draft() *models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SelectedEquipment returns the equipment being booked, or nil.
func (f *Flow) SelectedEquipment() *models.EquipmentItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.equipment
}

// MyBookings returns the user's bookings as last fetched.
func (f *Flow) MyBookings() []models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.myBookings
}

// Start opens a booking attempt for an equipment item. Without an
// authenticated session it fails so the app can redirect to authentication.
func (f *Flow) Start(equipment *models.EquipmentItem) error {
	if !f.session.IsAuthenticated() {
		return ErrAuthRequired
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stage = StageIdle
	f.equipment = equipment
	f.startDate = ""
	f.endDate = ""
	f.draft = nil
	f.intent = nil
	return nil
}

// SelectDates validates and records the date range.
func (f *Flow) SelectDates(startDate, endDate string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.equipment == nil {
		return ErrWrongStage
	}
	if err := ValidateDateRange(startDate, endDate, time.Now()); err != nil {
		return err
	}
	f.startDate = startDate
	f.endDate = endDate
	f.stage = StageDatesSelected
	return nil
}

// CreateDraft submits the booking draft to the server.
func (f *Flow) CreateDraft(ctx context.Context) error {
	f.mu.Lock()
	if f.stage != StageDatesSelected {
		f.mu.Unlock()
		return ErrWrongStage
	}
	if f.submitting {
		f.mu.Unlock()
		return ErrWrongStage
	}
	f.submitting = true
	equipmentID := f.equipment.ID
	startDate, endDate := f.startDate, f.endDate
	f.mu.Unlock()

	draft, err := f.api.CreateBooking(ctx, equipmentID, startDate, endDate)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.notifier.Error(api.ErrorMessage(err, "Failed to create booking"))
		return err
	}
	f.draft = draft
	f.stage = StageDraftCreated
	return nil
}

// BeginPayment hands the draft off to the payment widget by creating a
// payment intent.
func (f *Flow) BeginPayment(ctx context.Context) (*models.PaymentIntent, error) {
	f.mu.Lock()
	if f.stage != StageDraftCreated {
		f.mu.Unlock()
		return nil, ErrWrongStage
	}
	bookingID := f.draft.ID
	f.mu.Unlock()

	intent, err := f.api.CreatePaymentIntent(ctx, bookingID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.notifier.Error(api.ErrorMessage(err, "Failed to start payment"))
		return nil, err
	}
	f.intent = intent
	f.stage = StagePaymentPending
	return intent, nil
}

// CompletePayment reconciles a successful widget flow: the server confirms
// the payment, transient state is cleared and the booking list refreshed.
// The caller switches the active view to the bookings list on success.
func (f *Flow) CompletePayment(ctx context.Context) error {
	f.mu.Lock()
	if f.stage != StagePaymentPending {
		f.mu.Unlock()
		return ErrWrongStage
	}
	intentID := f.intent.PaymentIntentID
	f.mu.Unlock()

	if err := f.api.ConfirmPayment(ctx, intentID); err != nil {
		f.notifier.Error(api.ErrorMessage(err, "Payment confirmation failed"))
		return err
	}

	f.mu.Lock()
	f.equipment = nil
	f.startDate = ""
	f.endDate = ""
	f.draft = nil
	f.intent = nil
	f.stage = StageConfirmed
	f.mu.Unlock()

	f.notifier.Info("Payment successful! Your booking is confirmed.")
	return f.LoadMyBookings(ctx)
}

// Cancel abandons the attempt at any non-terminal stage, clearing the draft
// and returning control to the catalog with no side effects.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stage == StageConfirmed {
		return
	}
	f.equipment = nil
	f.startDate = ""
	f.endDate = ""
	f.draft = nil
	f.intent = nil
	f.stage = StageCancelled
}

// LoadMyBookings refetches the user's bookings.
func (f *Flow) LoadMyBookings(ctx context.Context) error {
	bookings, err := f.api.MyBookings(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.myBookings = nil
		return fmt.Errorf("failed to load bookings: %w", err)
	}
	f.myBookings = bookings
	return nil
}

// Reset clears everything, as on logout.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stage = StageIdle
	f.equipment = nil
	f.startDate = ""
	f.endDate = ""
	f.draft = nil
	f.intent = nil
	f.myBookings = nil
	f.submitting = false
}
