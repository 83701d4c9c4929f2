package models

import (
	"errors"
	"time"
)

// Course represents a marketplace course as served by the backend catalog.
type Course struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	CategoryID    string    `json:"categoryId,omitempty"`
	Price         float64   `json:"price"`
	HalfDayPrice  float64   `json:"halfDayPrice,omitempty"`
	FullDayPrice  float64   `json:"fullDayPrice,omitempty"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	InPerson      bool      `json:"inPerson,omitempty"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
	UpdatedAt     time.Time `json:"updatedAt,omitzero"`
}

// Validate rejects catalog payloads that are unusable for rendering or
// booking. Shapes are checked here once instead of at every call site.
func (c Course) Validate() error {
	if c.ID == "" {
		return errors.New("course is missing an id")
	}
	if c.Title == "" {
		return errors.New("course is missing a title")
	}
	if c.Price < 0 || c.HalfDayPrice < 0 || c.FullDayPrice < 0 {
		return errors.New("course has a negative price")
	}
	return nil
}

// Category represents a catalog category.
type Category struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Order int    `json:"order,omitempty"`
}

func (c Category) Validate() error {
	if c.ID == "" {
		return errors.New("category is missing an id")
	}
	if c.Name == "" {
		return errors.New("category is missing a name")
	}
	return nil
}

// ContentPage is an admin-editable marketing/content page.
type ContentPage struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func (p ContentPage) Validate() error {
	if p.Slug == "" {
		return errors.New("content page is missing a slug")
	}
	if p.Title == "" {
		return errors.New("content page is missing a title")
	}
	return nil
}
