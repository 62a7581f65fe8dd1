package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"taskboard/internal/api"
)

func (c *APIClient) GetBoards(ctx context.Context) ([]api.Board, error) {
	var boards []api.Board
	if err := c.do(ctx, http.MethodGet, "/boards", nil, http.StatusOK, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (c *APIClient) CreateBoard(ctx context.Context, name string) (api.Board, error) {
	var board api.Board
	err := c.do(ctx, http.MethodPost, "/boards", api.NameRequest{Name: name}, http.StatusCreated, &board)
	return board, err
}

func (c *APIClient) GetBoard(ctx context.Context, boardID string) (api.Board, error) {
	var board api.Board
	err := c.do(ctx, http.MethodGet, "/boards/"+boardID, nil, http.StatusOK, &board)
	return board, err
}

// RenameBoard returns the board as stored after the rename.
func (c *APIClient) RenameBoard(ctx context.Context, boardID, name string) (api.Board, error) {
	var board api.Board
	err := c.do(ctx, http.MethodPatch, "/boards/"+boardID, api.NameRequest{Name: name}, http.StatusOK, &board)
	return board, err
}

func (c *APIClient) DeleteBoard(ctx context.Context, boardID string) error {
	var result api.SuccessResponse
	if err := c.do(ctx, http.MethodDelete, "/boards/"+boardID, nil, http.StatusOK, &result); err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("delete board %s: backend did not confirm", boardID)
	}
	return nil
}

// ExportBoard returns the raw YAML snapshot of a board.
func (c *APIClient) ExportBoard(ctx context.Context, boardID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/boards/"+boardID+"/export", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	return io.ReadAll(resp.Body)
}
