// Package boardview keeps a client-side mirror of boards, lists and cards.
// Every mutation is sent to the API first and applied locally only after
// the API confirms it; a failed call leaves the mirror as it was.
package boardview

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/apiclient"
)

var (
	// ErrConfirmationRequired is returned by deletes called without an
	// explicit confirmation. No request is sent.
	ErrConfirmationRequired = errors.New("delete needs to be confirmed")
	// ErrBlank is returned when a required name or title is empty after
	// trimming. No request is sent.
	ErrBlank = errors.New("name must not be blank")
	// ErrNotLoaded is returned by Board mutations before Load succeeded
	// or after the board was deleted.
	ErrNotLoaded = errors.New("board is not loaded")
)

// Client is the subset of the API client the views depend on.
type Client interface {
	GetBoards(ctx context.Context) ([]api.Board, error)
	CreateBoard(ctx context.Context, name string) (api.Board, error)
	GetBoard(ctx context.Context, boardID string) (api.Board, error)
	RenameBoard(ctx context.Context, boardID, name string) (api.Board, error)
	DeleteBoard(ctx context.Context, boardID string) error

	GetLists(ctx context.Context, boardID string) ([]api.List, error)
	CreateList(ctx context.Context, boardID, name string) (api.List, error)
	RenameList(ctx context.Context, listID, name string) error
	DeleteList(ctx context.Context, listID string) error

	GetCards(ctx context.Context, listID string) ([]api.Card, error)
	CreateCard(ctx context.Context, listID, title, description string) (api.Card, error)
	UpdateCard(ctx context.Context, cardID, title string, description *string) error
	DeleteCard(ctx context.Context, cardID string) error
}

func required(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrBlank
	}
	return s, nil
}

var _ Client = (*apiclient.APIClient)(nil)
