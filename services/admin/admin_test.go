package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursely/backend"
	"coursely/models"
)

func TestCreateAppointmentValidatesBeforeRequest(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	svc := &DefaultAdminService{Backend: backend.New(server.URL, 0)}

	if _, err := svc.CreateAppointment(context.Background(), "tok", models.Appointment{Date: "2026-10-01T00:00:00Z"}); err == nil {
		t.Fatalf("appointment without a course id must be rejected")
	}
	if _, err := svc.CreateAppointment(context.Background(), "tok", models.Appointment{CourseID: "course-1"}); err == nil {
		t.Fatalf("appointment without a date must be rejected")
	}
	if requests != 0 {
		t.Fatalf("invalid appointments must not reach the backend, got %d requests", requests)
	}
}

func TestCreateAppointmentForwardsTokenAndPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/appointments" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("missing bearer token, got %q", got)
		}
		var appt models.Appointment
		if err := json.NewDecoder(r.Body).Decode(&appt); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		appt.ID = "appt-1"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(appt)
	}))
	defer server.Close()

	svc := &DefaultAdminService{Backend: backend.New(server.URL, 0)}
	created, err := svc.CreateAppointment(context.Background(), "tok-123", models.Appointment{
		CourseID:        "course-1",
		CourseDuration:  "full-day",
		AppointmentType: "in-person",
		Date:            "2026-10-01T00:00:00Z",
		Location:        "Main Street Training Center, 120 Main St, Springfield, IL 62701",
		MaxParticipants: 5,
	})
	if err != nil {
		t.Fatalf("CreateAppointment failed: %v", err)
	}
	if created.ID != "appt-1" || created.CourseID != "course-1" {
		t.Fatalf("unexpected created appointment %+v", created)
	}
}

func TestGetUser(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/users/u1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.User{ID: "u1", Email: "u1@example.com"})
	}))
	defer server.Close()

	svc := &DefaultAdminService{Backend: backend.New(server.URL, 0)}

	if _, err := svc.GetUser(context.Background(), "tok", ""); err == nil {
		t.Fatalf("empty user id must be rejected")
	}
	if requests != 0 {
		t.Fatalf("invalid lookup must not reach the backend")
	}

	user, err := svc.GetUser(context.Background(), "tok", "u1")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Email != "u1@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
}
