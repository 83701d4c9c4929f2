// Package catalog serves course browsing and detail data. It is a thin,
// validated read path over the marketplace backend.
package catalog

import (
	"context"
	"fmt"

	"coursely/backend"
	"coursely/models"
	"coursely/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	Courses(ctx context.Context, categoryID string) ([]models.Course, error)
	CourseByID(ctx context.Context, id string) (models.Course, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type DefaultCatalogService struct {
	Backend *backend.Client
}

// Courses lists published courses. Payloads that fail validation are dropped
// with a warning instead of breaking the whole listing.
func (s *DefaultCatalogService) Courses(ctx context.Context, categoryID string) ([]models.Course, error) {
	logger := utils.GetLogger()

	courses, err := s.Backend.Courses(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	valid := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if err := c.Validate(); err != nil {
			logger.Warn("dropping invalid course from listing", zap.String("id", c.ID), zap.Error(err))
			continue
		}
		if !c.Published {
			continue
		}
		valid = append(valid, c)
	}
	return valid, nil
}

func (s *DefaultCatalogService) CourseByID(ctx context.Context, id string) (models.Course, error) {
	course, err := s.Backend.CourseByID(ctx, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("failed to load course %s: %w", id, err)
	}
	if err := course.Validate(); err != nil {
		return models.Course{}, fmt.Errorf("backend returned an invalid course: %w", err)
	}
	// Unpublished courses are hidden from listings; the detail path must not
	// leak them either.
	if !course.Published {
		return models.Course{}, fmt.Errorf("course %s is not published", id)
	}
	return course, nil
}

func (s *DefaultCatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	logger := utils.GetLogger()

	cats, err := s.Backend.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	valid := make([]models.Category, 0, len(cats))
	for _, c := range cats {
		if err := c.Validate(); err != nil {
			logger.Warn("dropping invalid category from listing", zap.String("id", c.ID), zap.Error(err))
			continue
		}
		valid = append(valid, c)
	}
	return valid, nil
}
