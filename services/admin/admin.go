// Package admin is the management-dashboard plumbing: validated CRUD
// passthrough to the backend. Authorization is decided server-side; this
// layer only shapes requests and forwards the caller's bearer token.
package admin

import (
	"context"
	"fmt"

	"coursely/backend"
	"coursely/models"
)

type AdminService interface {
	ListUsers(ctx context.Context, token string) ([]models.User, error)
	GetUser(ctx context.Context, token, id string) (models.User, error)
	UpdateUser(ctx context.Context, token string, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, token, id string) error

	CreateCourse(ctx context.Context, token string, course models.Course) (models.Course, error)
	UpdateCourse(ctx context.Context, token string, course models.Course) (models.Course, error)
	DeleteCourse(ctx context.Context, token, id string) error

	CreateCategory(ctx context.Context, token string, cat models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, token string, cat models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error

	ListContent(ctx context.Context, token string) ([]models.ContentPage, error)
	SaveContent(ctx context.Context, token string, page models.ContentPage) (models.ContentPage, error)
	DeleteContent(ctx context.Context, token, slug string) error

	ListAppointments(ctx context.Context, token string) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, token string, appt models.Appointment) (models.Appointment, error)
	UpdateAppointment(ctx context.Context, token string, appt models.Appointment) (models.Appointment, error)
	DeleteAppointment(ctx context.Context, token, id string) error
}

type DefaultAdminService struct {
	Backend *backend.Client
}

func (s *DefaultAdminService) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	return s.Backend.ListUsers(ctx, token)
}

func (s *DefaultAdminService) GetUser(ctx context.Context, token, id string) (models.User, error) {
	if id == "" {
		return models.User{}, fmt.Errorf("user id is required")
	}
	return s.Backend.UserByID(ctx, token, id)
}

func (s *DefaultAdminService) UpdateUser(ctx context.Context, token string, user models.User) (models.User, error) {
	if err := user.Validate(); err != nil {
		return models.User{}, err
	}
	return s.Backend.UpdateUser(ctx, token, user)
}

func (s *DefaultAdminService) DeleteUser(ctx context.Context, token, id string) error {
	if id == "" {
		return fmt.Errorf("user id is required")
	}
	return s.Backend.DeleteUser(ctx, token, id)
}

func (s *DefaultAdminService) CreateCourse(ctx context.Context, token string, course models.Course) (models.Course, error) {
	if course.Title == "" {
		return models.Course{}, fmt.Errorf("course title is required")
	}
	if course.Price < 0 {
		return models.Course{}, fmt.Errorf("course price cannot be negative")
	}
	return s.Backend.CreateCourse(ctx, token, course)
}

func (s *DefaultAdminService) UpdateCourse(ctx context.Context, token string, course models.Course) (models.Course, error) {
	if err := course.Validate(); err != nil {
		return models.Course{}, err
	}
	return s.Backend.UpdateCourse(ctx, token, course)
}

func (s *DefaultAdminService) DeleteCourse(ctx context.Context, token, id string) error {
	if id == "" {
		return fmt.Errorf("course id is required")
	}
	return s.Backend.DeleteCourse(ctx, token, id)
}

func (s *DefaultAdminService) CreateCategory(ctx context.Context, token string, cat models.Category) (models.Category, error) {
	if cat.Name == "" {
		return models.Category{}, fmt.Errorf("category name is required")
	}
	return s.Backend.CreateCategory(ctx, token, cat)
}

func (s *DefaultAdminService) UpdateCategory(ctx context.Context, token string, cat models.Category) (models.Category, error) {
	if err := cat.Validate(); err != nil {
		return models.Category{}, err
	}
	return s.Backend.UpdateCategory(ctx, token, cat)
}

func (s *DefaultAdminService) DeleteCategory(ctx context.Context, token, id string) error {
	if id == "" {
		return fmt.Errorf("category id is required")
	}
	return s.Backend.DeleteCategory(ctx, token, id)
}

func (s *DefaultAdminService) ListContent(ctx context.Context, token string) ([]models.ContentPage, error) {
	return s.Backend.ContentPages(ctx, token)
}

func (s *DefaultAdminService) SaveContent(ctx context.Context, token string, page models.ContentPage) (models.ContentPage, error) {
	if err := page.Validate(); err != nil {
		return models.ContentPage{}, err
	}
	return s.Backend.UpsertContentPage(ctx, token, page)
}

func (s *DefaultAdminService) DeleteContent(ctx context.Context, token, slug string) error {
	if slug == "" {
		return fmt.Errorf("content slug is required")
	}
	return s.Backend.DeleteContentPage(ctx, token, slug)
}

func (s *DefaultAdminService) ListAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	return s.Backend.ListAppointments(ctx, token)
}

func (s *DefaultAdminService) CreateAppointment(ctx context.Context, token string, appt models.Appointment) (models.Appointment, error) {
	if appt.CourseID == "" {
		return models.Appointment{}, fmt.Errorf("appointment course id is required")
	}
	if appt.Date == "" {
		return models.Appointment{}, fmt.Errorf("appointment date is required")
	}
	return s.Backend.CreateAppointment(ctx, token, appt)
}

func (s *DefaultAdminService) UpdateAppointment(ctx context.Context, token string, appt models.Appointment) (models.Appointment, error) {
	if appt.ID == "" {
		return models.Appointment{}, fmt.Errorf("appointment id is required")
	}
	return s.Backend.UpdateAppointment(ctx, token, appt)
}

func (s *DefaultAdminService) DeleteAppointment(ctx context.Context, token, id string) error {
	if id == "" {
		return fmt.Errorf("appointment id is required")
	}
	return s.Backend.DeleteAppointment(ctx, token, id)
}
