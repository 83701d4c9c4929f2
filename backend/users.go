package backend

import (
	"context"
	"net/http"

	"coursely/models"
)

// ListUsers returns all accounts (admin use).
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserByID fetches a single account (admin use).
func (c *Client) UserByID(ctx context.Context, token, id string) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/"+id, token, nil, nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser updates an account's profile fields (admin use).
func (c *Client) UpdateUser(ctx context.Context, token string, user models.User) (models.User, error) {
	var updated models.User
	if err := c.do(ctx, http.MethodPut, "/users/"+user.ID, token, nil, user, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

// DeleteUser removes an account (admin use).
func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+id, token, nil, nil, nil)
}
