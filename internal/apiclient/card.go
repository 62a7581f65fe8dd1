package apiclient

import (
	"context"
	"net/http"

	"taskboard/internal/api"
)

func (c *APIClient) GetCards(ctx context.Context, listID string) ([]api.Card, error) {
	var cards []api.Card
	if err := c.do(ctx, http.MethodGet, "/lists/"+listID+"/cards", nil, http.StatusOK, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *APIClient) CreateCard(ctx context.Context, listID, title, description string) (api.Card, error) {
	var card api.Card
	req := api.CardRequest{Title: title, Description: &description}
	err := c.do(ctx, http.MethodPost, "/lists/"+listID+"/cards", req, http.StatusCreated, &card)
	return card, err
}

func (c *APIClient) GetCard(ctx context.Context, cardID string) (api.Card, error) {
	var card api.Card
	err := c.do(ctx, http.MethodGet, "/cards/"+cardID, nil, http.StatusOK, &card)
	return card, err
}

// UpdateCard sets the title and, when description is non-nil, the description.
func (c *APIClient) UpdateCard(ctx context.Context, cardID, title string, description *string) error {
	req := api.CardRequest{Title: title, Description: description}
	return c.do(ctx, http.MethodPatch, "/cards/"+cardID, req, http.StatusOK, nil)
}

func (c *APIClient) DeleteCard(ctx context.Context, cardID string) error {
	return c.do(ctx, http.MethodDelete, "/cards/"+cardID, nil, http.StatusOK, nil)
}
