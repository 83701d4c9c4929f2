package models

// PaymentIntentRequest is the body sent to the backend to obtain a payment
// client secret for an in-person training reservation.
type PaymentIntentRequest struct {
	CourseDuration  string `json:"courseDuration"`
	AppointmentType string `json:"appointmentType"`
	Date            string `json:"date"` // ISO timestamp
	Location        string `json:"location"`
	Notes           string `json:"notes,omitempty"`
	MaxParticipants int    `json:"maxParticipants"`
	CourseID        string `json:"courseId"`
}

// PaymentIntentResponse carries the opaque client secret used to confirm the
// payment with the gateway.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CardDetails are the raw payment-method fields collected in the modal.
// They are handed straight to the gateway and never stored.
type CardDetails struct {
	Number   string `json:"number"`
	ExpMonth int64  `json:"expMonth"`
	ExpYear  int64  `json:"expYear"`
	CVC      string `json:"cvc"`
}
