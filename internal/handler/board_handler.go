package handler

import (
	"fmt"
	"net/http"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/model"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"
)

type BoardHandler struct {
	boardRepo BoardStore
}

func NewBoardHandler(boardRepo BoardStore) *BoardHandler {
	return &BoardHandler{
		boardRepo: boardRepo,
	}
}

// GetAll lists every board, oldest first
// @Summary  List boards
// @Tags     Boards
// @Produce  json
// @Success  200 {array}  api.Board
// @Failure  500 {object} api.ErrorResponse
// @Router   /boards [get]
func (h *BoardHandler) GetAll(c *gin.Context) {
	boards, err := h.boardRepo.GetAll(c.Request.Context())
	if err != nil {
		storeError(c, err, "Failed to load boards")
		return
	}

	response := make([]api.Board, len(boards))
	for i, board := range boards {
		response[i] = toBoardResponse(board)
	}

	c.JSON(http.StatusOK, response)
}

// Create creates a new board
// @Summary  Create board
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    body body     api.NameRequest true "Board name"
// @Success  201  {object} api.Board
// @Failure  400  {object} api.ErrorResponse
// @Failure  500  {object} api.ErrorResponse
// @Router   /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req api.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Board name is required"})
		return
	}

	board := &model.Board{Name: strings.TrimSpace(req.Name)}
	if err := h.boardRepo.Create(c.Request.Context(), board); err != nil {
		storeError(c, err, "Failed to create board")
		return
	}

	c.JSON(http.StatusCreated, toBoardResponse(*board))
}

// GetByID returns a single board
// @Summary  Get board
// @Tags     Boards
// @Produce  json
// @Param    id  path     string true "Board ID"
// @Success  200 {object} api.Board
// @Failure  400 {object} api.ErrorResponse
// @Failure  404 {object} api.ErrorResponse
// @Failure  500 {object} api.ErrorResponse
// @Router   /boards/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	boardID, ok := parseID(c, "board")
	if !ok {
		return
	}

	board, err := h.boardRepo.GetByID(c.Request.Context(), boardID)
	if err != nil {
		storeError(c, err, "Failed to retrieve board")
		return
	}

	c.JSON(http.StatusOK, toBoardResponse(*board))
}

// Rename changes a board's name
// @Summary  Rename board
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    id   path     string          true "Board ID"
// @Param    body body     api.NameRequest true "New name"
// @Success  200  {object} api.Board
// @Failure  400  {object} api.ErrorResponse
// @Failure  404  {object} api.ErrorResponse
// @Failure  500  {object} api.ErrorResponse
// @Router   /boards/{id} [patch]
func (h *BoardHandler) Rename(c *gin.Context) {
	boardID, ok := parseID(c, "board")
	if !ok {
		return
	}

	var req api.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Name is required"})
		return
	}

	board, err := h.boardRepo.Rename(c.Request.Context(), boardID, strings.TrimSpace(req.Name))
	if err != nil {
		storeError(c, err, "Failed to update board")
		return
	}

	c.JSON(http.StatusOK, toBoardResponse(*board))
}

// Delete removes a board with all of its lists and cards
// @Summary  Delete board
// @Tags     Boards
// @Produce  json
// @Param    id  path     string true "Board ID"
// @Success  200 {object} api.SuccessResponse
// @Failure  400 {object} api.ErrorResponse
// @Failure  404 {object} api.ErrorResponse
// @Failure  500 {object} api.ErrorResponse
// @Router   /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	boardID, ok := parseID(c, "board")
	if !ok {
		return
	}

	if err := h.boardRepo.Delete(c.Request.Context(), boardID); err != nil {
		storeError(c, err, "Failed to delete board")
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}

// Export downloads a board with its lists and cards as YAML
// @Summary  Export board
// @Tags     Boards
// @Produce  application/yaml
// @Param    id  path     string true "Board ID"
// @Success  200 {object} api.BoardExport
// @Failure  400 {object} api.ErrorResponse
// @Failure  404 {object} api.ErrorResponse
// @Failure  500 {object} api.ErrorResponse
// @Router   /boards/{id}/export [get]
func (h *BoardHandler) Export(c *gin.Context) {
	boardID, ok := parseID(c, "board")
	if !ok {
		return
	}

	snap, err := h.boardRepo.Snapshot(c.Request.Context(), boardID)
	if err != nil {
		storeError(c, err, "Failed to export board")
		return
	}

	export := api.BoardExport{
		Board: toBoardResponse(snap.Board),
		Lists: make([]api.ListExport, len(snap.Lists)),
	}
	index := make(map[string]int, len(snap.Lists))
	for i, list := range snap.Lists {
		export.Lists[i] = api.ListExport{List: toListResponse(list), Cards: []api.Card{}}
		index[list.ID.String()] = i
	}
	for _, card := range snap.Cards {
		if i, ok := index[card.ListID.String()]; ok {
			export.Lists[i].Cards = append(export.Lists[i].Cards, toCardResponse(card))
		}
	}

	out, err := yaml.Marshal(export)
	if err != nil {
		storeError(c, err, "Failed to export board")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="board-%s.yaml"`, boardID))
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", out)
}
