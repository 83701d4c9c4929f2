package backend

import (
	"context"
	"net/http"
	"net/url"

	"coursely/models"
)

// Courses lists published courses, optionally filtered by category.
func (c *Client) Courses(ctx context.Context, categoryID string) ([]models.Course, error) {
	var q url.Values
	if categoryID != "" {
		q = url.Values{}
		q.Set("category", categoryID)
	}
	var courses []models.Course
	if err := c.do(ctx, http.MethodGet, "/courses", "", q, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CourseByID fetches a single course.
func (c *Client) CourseByID(ctx context.Context, id string) (models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodGet, "/courses/"+id, "", nil, nil, &course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// Categories lists catalog categories.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", "", nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// CreateCourse creates a course (admin use).
func (c *Client) CreateCourse(ctx context.Context, token string, course models.Course) (models.Course, error) {
	var created models.Course
	if err := c.do(ctx, http.MethodPost, "/courses", token, nil, course, &created); err != nil {
		return models.Course{}, err
	}
	return created, nil
}

// UpdateCourse updates a course (admin use).
func (c *Client) UpdateCourse(ctx context.Context, token string, course models.Course) (models.Course, error) {
	var updated models.Course
	if err := c.do(ctx, http.MethodPut, "/courses/"+course.ID, token, nil, course, &updated); err != nil {
		return models.Course{}, err
	}
	return updated, nil
}

// DeleteCourse removes a course (admin use).
func (c *Client) DeleteCourse(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/courses/"+id, token, nil, nil, nil)
}

// CreateCategory creates a category (admin use).
func (c *Client) CreateCategory(ctx context.Context, token string, cat models.Category) (models.Category, error) {
	var created models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", token, nil, cat, &created); err != nil {
		return models.Category{}, err
	}
	return created, nil
}

// UpdateCategory updates a category (admin use).
func (c *Client) UpdateCategory(ctx context.Context, token string, cat models.Category) (models.Category, error) {
	var updated models.Category
	if err := c.do(ctx, http.MethodPut, "/categories/"+cat.ID, token, nil, cat, &updated); err != nil {
		return models.Category{}, err
	}
	return updated, nil
}

// DeleteCategory removes a category (admin use).
func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+id, token, nil, nil, nil)
}
