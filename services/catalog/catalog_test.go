package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursely/backend"
	"coursely/models"
)

func catalogServer(t *testing.T, courses []models.Course) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/courses":
			json.NewEncoder(w).Encode(courses)
		case strings.HasPrefix(r.URL.Path, "/courses/"):
			id := strings.TrimPrefix(r.URL.Path, "/courses/")
			for _, c := range courses {
				if c.ID == id {
					json.NewEncoder(w).Encode(c)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "course not found"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestCoursesDropsInvalidAndUnpublished(t *testing.T) {
	server := catalogServer(t, []models.Course{
		{ID: "a", Title: "Forklift Safety", Price: 500, Published: true},
		{ID: "", Title: "No ID", Price: 100, Published: true},
		{ID: "c", Title: "Draft Course", Price: 100, Published: false},
		{ID: "d", Title: "Negative", Price: -5, Published: true},
	})
	defer server.Close()

	svc := &DefaultCatalogService{Backend: backend.New(server.URL, 0)}
	courses, err := svc.Courses(context.Background(), "")
	if err != nil {
		t.Fatalf("Courses failed: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "a" {
		t.Fatalf("expected only the valid published course, got %+v", courses)
	}
}

func TestCourseByIDRejectsInvalidPayload(t *testing.T) {
	server := catalogServer(t, []models.Course{
		{ID: "bad", Title: "", Price: 100, Published: true},
	})
	defer server.Close()

	svc := &DefaultCatalogService{Backend: backend.New(server.URL, 0)}
	if _, err := svc.CourseByID(context.Background(), "bad"); err == nil {
		t.Fatalf("invalid course payload must be rejected")
	}
}

func TestCourseByIDRejectsUnpublishedCourse(t *testing.T) {
	server := catalogServer(t, []models.Course{
		{ID: "draft", Title: "Draft Course", Price: 100, Published: false},
	})
	defer server.Close()

	svc := &DefaultCatalogService{Backend: backend.New(server.URL, 0)}
	if _, err := svc.CourseByID(context.Background(), "draft"); err == nil {
		t.Fatalf("unpublished course must not be served on the detail path")
	}
}

func TestCourseByIDNotFound(t *testing.T) {
	server := catalogServer(t, nil)
	defer server.Close()

	svc := &DefaultCatalogService{Backend: backend.New(server.URL, 0)}
	if _, err := svc.CourseByID(context.Background(), "missing"); err == nil {
		t.Fatalf("expected not-found error")
	}
}
