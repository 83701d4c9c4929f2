package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"coursely/models"
)

// AvailableSlots fetches per-day slot availability for the inclusive date
// range [start, end], both formatted "2006-01-02".
func (c *Client) AvailableSlots(ctx context.Context, start, end string) ([]models.DayAvailability, error) {
	q := url.Values{}
	q.Set("startDate", start)
	q.Set("endDate", end)

	var days []models.DayAvailability
	if err := c.do(ctx, http.MethodGet, "/appointments/available-slots", "", q, nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// CreatePaymentIntent submits the finalized booking and returns the payment
// client secret. The backend re-checks slot availability here; "slot no
// longer available" surfaces as an *APIError even when the client pre-check
// passed.
func (c *Client) CreatePaymentIntent(ctx context.Context, token string, req models.PaymentIntentRequest) (string, error) {
	var resp models.PaymentIntentResponse
	if err := c.do(ctx, http.MethodPost, "/stripe/create-payment-intent", token, nil, req, &resp); err != nil {
		return "", err
	}
	if resp.ClientSecret == "" {
		return "", fmt.Errorf("backend returned an empty client secret")
	}
	return resp.ClientSecret, nil
}

// ListAppointments returns the appointments visible to the caller.
func (c *Client) ListAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", token, nil, nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// CreateAppointment creates an appointment record directly (admin use).
func (c *Client) CreateAppointment(ctx context.Context, token string, appt models.Appointment) (models.Appointment, error) {
	var created models.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments", token, nil, appt, &created); err != nil {
		return models.Appointment{}, err
	}
	return created, nil
}

// UpdateAppointment updates an appointment record (admin use).
func (c *Client) UpdateAppointment(ctx context.Context, token string, appt models.Appointment) (models.Appointment, error) {
	var updated models.Appointment
	if err := c.do(ctx, http.MethodPut, "/appointments/"+appt.ID, token, nil, appt, &updated); err != nil {
		return models.Appointment{}, err
	}
	return updated, nil
}

// DeleteAppointment removes an appointment record (admin use).
func (c *Client) DeleteAppointment(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/appointments/"+id, token, nil, nil, nil)
}
