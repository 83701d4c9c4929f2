package models

import (
	"errors"
	"time"
)

// User is the backend-owned account record as consumed by the admin
// dashboard. Credentials never pass through this service.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

func (u User) Validate() error {
	if u.ID == "" {
		return errors.New("user is missing an id")
	}
	if u.Email == "" {
		return errors.New("user is missing an email")
	}
	return nil
}
