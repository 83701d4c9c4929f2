package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"coursely/backend"
	"coursely/models"
)

type fakeIntents struct {
	secret string
	err    error
	calls  int
}

func (f *fakeIntents) CreatePaymentIntent(ctx context.Context, token string, req models.PaymentIntentRequest) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

type fakeGateway struct {
	pmID       string
	pmErr      error
	confirmErr error
}

func (f *fakeGateway) CreatePaymentMethod(ctx context.Context, card models.CardDetails) (string, error) {
	if f.pmErr != nil {
		return "", f.pmErr
	}
	return f.pmID, nil
}

func (f *fakeGateway) ConfirmPayment(ctx context.Context, clientSecret, paymentMethodID string) error {
	return f.confirmErr
}

type countingInvalidator struct {
	calls     int
	lastYear  int
	lastMonth time.Month
}

func (f *countingInvalidator) Invalidate(ctx context.Context, year int, month time.Month) error {
	f.calls++
	f.lastYear = year
	f.lastMonth = month
	return nil
}

func validDetails() models.ReservationDetails {
	return models.ReservationDetails{
		VenueName:       "Main Street Training Center",
		StreetAddress:   "120 Main St",
		City:            "Springfield",
		State:           "IL",
		Zip:             "62701",
		MaxParticipants: 5,
	}
}

// readySession returns a session with a full-day slot on 2025-05-02 selected
// and availability confirmed.
func readySession(t *testing.T) *models.BookingSession {
	t.Helper()
	s := newTestSession()
	SelectDuration(s, models.DurationFullDay)
	if _, ok := SelectDate(s, time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC), testNow); !ok {
		t.Fatalf("date selection failed")
	}
	applyMonth(t, s, []models.DayAvailability{
		{Date: "2025-05-02", Slots: []models.SlotKind{models.SlotFullDay}},
	})
	if !IsCurrentSelectionAvailable(s) {
		t.Fatalf("fixture selection should be available")
	}
	return s
}

func TestSubmitDetailsValidation(t *testing.T) {
	intents := &fakeIntents{secret: "pi_123_secret_abc"}
	r := &ReservationSubmitter{Intents: intents, Gateway: &fakeGateway{}, Availability: &countingInvalidator{}}

	s := readySession(t)
	err := r.SubmitDetails(context.Background(), s, "token", models.ReservationDetails{Notes: "no venue"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	for _, field := range []string{"venueName", "streetAddress", "city", "state", "zip", "maxParticipants"} {
		if vErr.Fields[field] == "" {
			t.Fatalf("missing field error for %s", field)
		}
	}
	if s.State != models.StateCollectingDetails {
		t.Fatalf("validation failure must not advance the state, got %s", s.State)
	}
	if intents.calls != 0 {
		t.Fatalf("no intent must be created on validation failure, got %d calls", intents.calls)
	}
}

func TestSubmitDetailsRejectsUnavailableSelection(t *testing.T) {
	intents := &fakeIntents{secret: "pi_123_secret_abc"}
	r := &ReservationSubmitter{Intents: intents, Gateway: &fakeGateway{}, Availability: &countingInvalidator{}}

	s := newTestSession()
	if _, ok := SelectDate(s, time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC), testNow); !ok {
		t.Fatalf("date selection failed")
	}
	// No availability data: the fetch never completed.
	err := r.SubmitDetails(context.Background(), s, "token", validDetails())
	if err == nil {
		t.Fatalf("expected slotUnavailable error")
	}
	if intents.calls != 0 {
		t.Fatalf("no intent must be created for an unavailable slot")
	}
}

func TestSubmitDetailsIntentFailureKeepsServerMessage(t *testing.T) {
	intents := &fakeIntents{err: &backend.APIError{Status: 409, Message: "This slot was just booked by another customer."}}
	r := &ReservationSubmitter{Intents: intents, Gateway: &fakeGateway{}, Availability: &countingInvalidator{}}

	s := readySession(t)
	if err := r.SubmitDetails(context.Background(), s, "token", validDetails()); err == nil {
		t.Fatalf("expected intent creation error")
	}
	if s.State != models.StateCollectingDetails {
		t.Fatalf("failed intent must return to collecting-details, got %s", s.State)
	}
	if s.ErrorMessage != "This slot was just booked by another customer." {
		t.Fatalf("server message must be kept verbatim, got %q", s.ErrorMessage)
	}
	if s.ClientSecret != "" {
		t.Fatalf("no client secret may be stored on failure")
	}
}

func TestSubmitDetailsSuccess(t *testing.T) {
	intents := &fakeIntents{secret: "pi_123_secret_abc"}
	r := &ReservationSubmitter{Intents: intents, Gateway: &fakeGateway{}, Availability: &countingInvalidator{}}

	s := readySession(t)
	if err := r.SubmitDetails(context.Background(), s, "token", validDetails()); err != nil {
		t.Fatalf("SubmitDetails failed: %v", err)
	}
	if s.State != models.StateAwaitingPayment {
		t.Fatalf("expected awaiting-payment, got %s", s.State)
	}
	if s.ClientSecret != "pi_123_secret_abc" {
		t.Fatalf("client secret not stored, got %q", s.ClientSecret)
	}
	if s.ErrorMessage != "" {
		t.Fatalf("unexpected error message %q", s.ErrorMessage)
	}
}

func TestPayDeclineStaysRecoverable(t *testing.T) {
	inv := &countingInvalidator{}
	r := &ReservationSubmitter{
		Intents:      &fakeIntents{secret: "pi_123_secret_abc"},
		Gateway:      &fakeGateway{pmID: "pm_1", confirmErr: &GatewayError{Message: "Your card was declined.", Recoverable: true}},
		Availability: inv,
	}

	s := readySession(t)
	if err := r.SubmitDetails(context.Background(), s, "token", validDetails()); err != nil {
		t.Fatalf("SubmitDetails failed: %v", err)
	}
	if err := r.Pay(context.Background(), s, models.CardDetails{}); err == nil {
		t.Fatalf("expected decline error")
	}
	if s.State != models.StateAwaitingPayment {
		t.Fatalf("a declined card must stay in awaiting-payment, got %s", s.State)
	}
	if s.ErrorMessage != "Your card was declined." {
		t.Fatalf("decline message must reach the session, got %q", s.ErrorMessage)
	}
	if inv.calls != 0 {
		t.Fatalf("no invalidation on a failed payment, got %d", inv.calls)
	}
}

func TestPayTransportErrorFailsAndRetryReArms(t *testing.T) {
	inv := &countingInvalidator{}
	r := &ReservationSubmitter{
		Intents:      &fakeIntents{secret: "pi_123_secret_abc"},
		Gateway:      &fakeGateway{pmID: "pm_1", confirmErr: errors.New("connection reset")},
		Availability: inv,
	}

	s := readySession(t)
	if err := r.SubmitDetails(context.Background(), s, "token", validDetails()); err != nil {
		t.Fatalf("SubmitDetails failed: %v", err)
	}
	if err := r.Pay(context.Background(), s, models.CardDetails{}); err == nil {
		t.Fatalf("expected transport error")
	}
	if s.State != models.StateFailed {
		t.Fatalf("a transport error must fail the flow, got %s", s.State)
	}
	if s.ErrorMessage == "" {
		t.Fatalf("failed flow must carry a message")
	}

	if err := r.Retry(s); err != nil {
		t.Fatalf("Retry failed: %v", err)
	}
	if s.State != models.StateAwaitingPayment {
		t.Fatalf("retry with a held client secret must return to awaiting-payment, got %s", s.State)
	}
	if s.ErrorMessage != "" {
		t.Fatalf("retry must clear the error message")
	}
}

func TestPaySuccessInvalidatesMonthOnce(t *testing.T) {
	inv := &countingInvalidator{}
	r := &ReservationSubmitter{
		Intents:      &fakeIntents{secret: "pi_123_secret_abc"},
		Gateway:      &fakeGateway{pmID: "pm_1"},
		Availability: inv,
	}

	s := readySession(t)
	if err := r.SubmitDetails(context.Background(), s, "token", validDetails()); err != nil {
		t.Fatalf("SubmitDetails failed: %v", err)
	}
	if err := r.Pay(context.Background(), s, models.CardDetails{Number: "4242424242424242"}); err != nil {
		t.Fatalf("Pay failed: %v", err)
	}

	if s.State != models.StateConfirmed {
		t.Fatalf("expected confirmed, got %s", s.State)
	}
	if s.ErrorMessage != "" {
		t.Fatalf("confirmed flow must carry no error message, got %q", s.ErrorMessage)
	}
	if inv.calls != 1 {
		t.Fatalf("exactly one invalidation expected, got %d", inv.calls)
	}
	if inv.lastYear != 2025 || inv.lastMonth != time.May {
		t.Fatalf("wrong month invalidated: %d-%d", inv.lastYear, inv.lastMonth)
	}
}

func TestPayRejectsWrongState(t *testing.T) {
	r := &ReservationSubmitter{Intents: &fakeIntents{}, Gateway: &fakeGateway{}, Availability: &countingInvalidator{}}
	s := readySession(t)
	if err := r.Pay(context.Background(), s, models.CardDetails{}); err == nil {
		t.Fatalf("paying before details are submitted must fail")
	}
	if s.State != models.StateCollectingDetails {
		t.Fatalf("rejected pay must not change the state, got %s", s.State)
	}
}
