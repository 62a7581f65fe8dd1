package boardview

import (
	"context"
	"slices"
	"sync"

	"taskboard/internal/api"
)

// Index mirrors the list of all boards.
type Index struct {
	client Client

	mu     sync.Mutex
	boards []api.Board
}

func NewIndex(client Client) *Index {
	return &Index{client: client}
}

func (ix *Index) Load(ctx context.Context) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	boards, err := ix.client.GetBoards(ctx)
	if err != nil {
		return err
	}
	ix.boards = boards
	return nil
}

// Boards returns a copy of the mirrored boards, oldest first.
func (ix *Index) Boards() []api.Board {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return slices.Clone(ix.boards)
}

// CreateBoard creates a board and appends it to the mirror.
func (ix *Index) CreateBoard(ctx context.Context, name string) (api.Board, error) {
	name, err := required(name)
	if err != nil {
		return api.Board{}, err
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	board, err := ix.client.CreateBoard(ctx, name)
	if err != nil {
		return api.Board{}, err
	}
	ix.boards = append(ix.boards, board)
	return board, nil
}
