package backend

import (
	"context"
	"net/http"

	"coursely/models"
)

// ContentPages lists content pages (admin use).
func (c *Client) ContentPages(ctx context.Context, token string) ([]models.ContentPage, error) {
	var pages []models.ContentPage
	if err := c.do(ctx, http.MethodGet, "/content", token, nil, nil, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// UpsertContentPage creates or replaces a content page by slug (admin use).
func (c *Client) UpsertContentPage(ctx context.Context, token string, page models.ContentPage) (models.ContentPage, error) {
	var saved models.ContentPage
	if err := c.do(ctx, http.MethodPut, "/content/"+page.Slug, token, nil, page, &saved); err != nil {
		return models.ContentPage{}, err
	}
	return saved, nil
}

// DeleteContentPage removes a content page (admin use).
func (c *Client) DeleteContentPage(ctx context.Context, token, slug string) error {
	return c.do(ctx, http.MethodDelete, "/content/"+slug, token, nil, nil, nil)
}

// SendNotification asks the backend to deliver a notification to a user.
// Used by the reminder worker.
func (c *Client) SendNotification(ctx context.Context, userID, title, body string) error {
	payload := map[string]string{
		"userId": userID,
		"title":  title,
		"body":   body,
	}
	return c.do(ctx, http.MethodPost, "/notifications", "", nil, payload, nil)
}
