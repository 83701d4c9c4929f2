package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coursely/backend"
	"coursely/models"
	"coursely/utils"

	"go.uber.org/zap"
)

// IntentCreator obtains a payment client secret from the backend. Satisfied
// by *backend.Client.
type IntentCreator interface {
	CreatePaymentIntent(ctx context.Context, token string, req models.PaymentIntentRequest) (string, error)
}

// Invalidator drops cached availability for a month after a slot is consumed.
type Invalidator interface {
	Invalidate(ctx context.Context, year int, month time.Month) error
}

// ReservationSubmitter drives the reservation state machine:
// collecting-details → creating-intent → awaiting-payment → confirmed|failed.
type ReservationSubmitter struct {
	Intents      IntentCreator
	Gateway      Gateway
	Availability Invalidator
}

// ValidateDetails checks the venue/participant form before any network call.
func ValidateDetails(d models.ReservationDetails) map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(d.VenueName) == "" {
		errs["venueName"] = "Venue name is required."
	}
	if strings.TrimSpace(d.StreetAddress) == "" {
		errs["streetAddress"] = "Street address is required."
	}
	if strings.TrimSpace(d.City) == "" {
		errs["city"] = "City is required."
	}
	if strings.TrimSpace(d.State) == "" {
		errs["state"] = "State is required."
	}
	if strings.TrimSpace(d.Zip) == "" {
		errs["zip"] = "ZIP code is required."
	}
	if d.MaxParticipants < 1 {
		errs["maxParticipants"] = "At least one participant is required."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// SubmitDetails validates the form, then creates the payment intent. On a
// backend failure the server's message is kept on the session and the state
// returns to collecting-details for retry; on success the session holds the
// client secret and awaits payment.
func (r *ReservationSubmitter) SubmitDetails(ctx context.Context, s *models.BookingSession, token string, d models.ReservationDetails) error {
	if s.State != models.StateCollectingDetails {
		return NewBookingError("invalidState", fmt.Sprintf("cannot submit details while %s", s.State))
	}
	if fieldErrs := ValidateDetails(d); fieldErrs != nil {
		return &ValidationError{Fields: fieldErrs}
	}
	// Client-side pre-check for UX; the backend re-checks authoritatively.
	if !IsCurrentSelectionAvailable(s) {
		return NewBookingError("slotUnavailable", "The selected slot is not available.")
	}

	s.Details = d
	s.State = models.StateCreatingIntent
	s.ErrorMessage = ""

	secret, err := r.Intents.CreatePaymentIntent(ctx, token, intentRequest(s))
	if err != nil {
		// Recoverable: surface the server's message near the submit button.
		s.State = models.StateCollectingDetails
		s.ErrorMessage = intentErrorMessage(err)
		return err
	}

	s.ClientSecret = secret
	s.State = models.StateAwaitingPayment
	return nil
}

// Pay creates the gateway payment method and confirms the payment with the
// previously obtained client secret. Gateway-reported errors keep the state
// in awaiting-payment for retry; transport failures transition to failed.
// A confirmed payment invalidates the booked month's availability exactly
// once.
func (r *ReservationSubmitter) Pay(ctx context.Context, s *models.BookingSession, card models.CardDetails) error {
	logger := utils.GetLogger()

	if s.State != models.StateAwaitingPayment {
		return NewBookingError("invalidState", fmt.Sprintf("cannot pay while %s", s.State))
	}

	pmID, err := r.Gateway.CreatePaymentMethod(ctx, card)
	if err != nil {
		return r.handleGatewayError(s, err)
	}
	if err := r.Gateway.ConfirmPayment(ctx, s.ClientSecret, pmID); err != nil {
		return r.handleGatewayError(s, err)
	}

	s.State = models.StateConfirmed
	s.ErrorMessage = ""

	if date, err := time.Parse(dateLayout, s.Selection.SelectedDate); err == nil {
		if err := r.Availability.Invalidate(ctx, date.Year(), date.Month()); err != nil {
			logger.Warn("failed to invalidate month availability after booking",
				zap.String("date", s.Selection.SelectedDate), zap.Error(err))
		}
	}
	return nil
}

// Retry re-arms a failed flow. The client secret is still held, so the user
// retries payment without re-entering booking details.
func (r *ReservationSubmitter) Retry(s *models.BookingSession) error {
	if s.State != models.StateFailed {
		return NewBookingError("invalidState", fmt.Sprintf("cannot retry while %s", s.State))
	}
	if s.ClientSecret == "" {
		s.State = models.StateCollectingDetails
	} else {
		s.State = models.StateAwaitingPayment
	}
	s.ErrorMessage = ""
	return nil
}

func (r *ReservationSubmitter) handleGatewayError(s *models.BookingSession, err error) error {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) && gwErr.Recoverable {
		s.ErrorMessage = gwErr.Message
		return err
	}
	s.State = models.StateFailed
	s.ErrorMessage = "An unexpected error occurred. Please try again."
	return err
}

// intentRequest shapes the finalized selection and details into the backend
// payment-intent payload.
func intentRequest(s *models.BookingSession) models.PaymentIntentRequest {
	location := fmt.Sprintf("%s, %s, %s, %s %s",
		s.Details.VenueName, s.Details.StreetAddress, s.Details.City, s.Details.State, s.Details.Zip)
	return models.PaymentIntentRequest{
		CourseDuration:  string(s.Selection.DurationKind),
		AppointmentType: "in-person",
		Date:            s.Selection.SelectedDate + "T00:00:00Z",
		Location:        location,
		Notes:           s.Details.Notes,
		MaxParticipants: s.Details.MaxParticipants,
		CourseID:        s.Selection.CourseID,
	}
}

// intentErrorMessage surfaces the server's own message verbatim when the
// backend reported one; transport errors get a generic message.
func intentErrorMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Could not start the payment. Please try again."
}
