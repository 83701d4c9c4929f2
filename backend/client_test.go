package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursely/models"
)

func TestAPIErrorKeepsServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "This slot was just booked by another customer."})
	}))
	defer server.Close()

	c := New(server.URL, 0)
	_, err := c.CreatePaymentIntent(context.Background(), "tok", models.PaymentIntentRequest{})
	if err == nil {
		t.Fatalf("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", apiErr.Status)
	}
	if apiErr.Message != "This slot was just booked by another customer." {
		t.Fatalf("server message lost, got %q", apiErr.Message)
	}
}

func TestAPIErrorFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := New(server.URL, 0)
	_, err := c.AvailableSlots(context.Background(), "2025-05-01", "2025-05-31")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("expected status-text fallback, got %q", apiErr.Message)
	}
}

func TestCreatePaymentIntentForwardsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stripe/create-payment-intent" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("missing bearer token, got %q", got)
		}
		var req models.PaymentIntentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.CourseID != "course-1" {
			t.Fatalf("course id lost, got %q", req.CourseID)
		}
		json.NewEncoder(w).Encode(models.PaymentIntentResponse{ClientSecret: "pi_1_secret_x"})
	}))
	defer server.Close()

	c := New(server.URL, 0)
	secret, err := c.CreatePaymentIntent(context.Background(), "tok-123", models.PaymentIntentRequest{CourseID: "course-1"})
	if err != nil {
		t.Fatalf("CreatePaymentIntent failed: %v", err)
	}
	if secret != "pi_1_secret_x" {
		t.Fatalf("wrong secret %q", secret)
	}
}

func TestCreatePaymentIntentRejectsEmptySecret(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.PaymentIntentResponse{})
	}))
	defer server.Close()

	c := New(server.URL, 0)
	if _, err := c.CreatePaymentIntent(context.Background(), "tok", models.PaymentIntentRequest{}); err == nil {
		t.Fatalf("empty client secret must be an error")
	}
}
