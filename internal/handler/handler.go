package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/logger"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BoardStore interface {
	Create(ctx context.Context, board *model.Board) error
	GetAll(ctx context.Context) ([]model.Board, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*model.Board, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Snapshot(ctx context.Context, id uuid.UUID) (*repository.BoardSnapshot, error)
}

type ListStore interface {
	Create(ctx context.Context, list *model.List) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.List, error)
	GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.List, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CardStore interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error)
	Update(ctx context.Context, id uuid.UUID, title string, description *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var (
	_ BoardStore = (*repository.BoardRepository)(nil)
	_ ListStore  = (*repository.ListRepository)(nil)
	_ CardStore  = (*repository.CardRepository)(nil)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}
}

// parseID reads the :id path parameter. On failure it writes a 400 and
// returns false, so no store access happens for malformed ids.
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + what + " id"})
		return uuid.Nil, false
	}
	return id, true
}

// storeError maps a repository error onto the response.
func storeError(c *gin.Context, err error, failMsg string) {
	switch {
	case errors.Is(err, repository.ErrBoardNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Board not found"})
	case errors.Is(err, repository.ErrListNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "List not found"})
	case errors.Is(err, repository.ErrCardNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Card not found"})
	default:
		logger.Log.Error(failMsg, "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: failMsg})
	}
}

func toBoardResponse(b model.Board) api.Board {
	return api.Board{
		ID:        b.ID.String(),
		Name:      b.Name,
		CreatedAt: b.CreatedAt.UTC(),
		UpdatedAt: b.UpdatedAt.UTC(),
	}
}

func toListResponse(l model.List) api.List {
	return api.List{
		ID:        l.ID.String(),
		BoardID:   l.BoardID.String(),
		Name:      l.Name,
		Position:  l.Position,
		CreatedAt: l.CreatedAt.UTC(),
		UpdatedAt: l.UpdatedAt.UTC(),
	}
}

func toCardResponse(card model.Card) api.Card {
	return api.Card{
		ID:          card.ID.String(),
		ListID:      card.ListID.String(),
		Title:       card.Title,
		Description: card.Description,
		CreatedAt:   card.CreatedAt.UTC(),
		UpdatedAt:   card.UpdatedAt.UTC(),
	}
}
