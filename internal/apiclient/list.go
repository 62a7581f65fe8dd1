package apiclient

import (
	"context"
	"net/http"

	"taskboard/internal/api"
)

func (c *APIClient) GetLists(ctx context.Context, boardID string) ([]api.List, error) {
	var lists []api.List
	if err := c.do(ctx, http.MethodGet, "/boards/"+boardID+"/lists", nil, http.StatusOK, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *APIClient) CreateList(ctx context.Context, boardID, name string) (api.List, error) {
	var list api.List
	err := c.do(ctx, http.MethodPost, "/boards/"+boardID+"/lists", api.NameRequest{Name: name}, http.StatusCreated, &list)
	return list, err
}

func (c *APIClient) GetList(ctx context.Context, listID string) (api.List, error) {
	var list api.List
	err := c.do(ctx, http.MethodGet, "/lists/"+listID, nil, http.StatusOK, &list)
	return list, err
}

func (c *APIClient) RenameList(ctx context.Context, listID, name string) error {
	return c.do(ctx, http.MethodPatch, "/lists/"+listID, api.NameRequest{Name: name}, http.StatusOK, nil)
}

func (c *APIClient) DeleteList(ctx context.Context, listID string) error {
	return c.do(ctx, http.MethodDelete, "/lists/"+listID, nil, http.StatusOK, nil)
}
