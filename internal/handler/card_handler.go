package handler

import (
	"net/http"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/model"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardRepo CardStore
}

func NewCardHandler(cardRepo CardStore) *CardHandler {
	return &CardHandler{cardRepo: cardRepo}
}

// GetByList lists the cards of a list, oldest first
// @Summary  List cards of a list
// @Tags     Cards
// @Produce  json
// @Param    id  path     string true "List ID"
// @Success  200 {array}  api.Card
// @Failure  400 {object} api.ErrorResponse
// @Failure  500 {object} api.ErrorResponse
// @Router   /lists/{id}/cards [get]
func (h *CardHandler) GetByList(c *gin.Context) {
	listID, ok := parseID(c, "list")
	if !ok {
		return
	}

	cards, err := h.cardRepo.GetByListID(c.Request.Context(), listID)
	if err != nil {
		storeError(c, err, "Internal server error")
		return
	}

	response := make([]api.Card, len(cards))
	for i, card := range cards {
		response[i] = toCardResponse(card)
	}

	c.JSON(http.StatusOK, response)
}

// Create adds a card to a list
// @Summary  Create card
// @Tags     Cards
// @Accept   json
// @Produce  json
// @Param    id   path     string          true "List ID"
// @Param    body body     api.CardRequest true "Card"
// @Success  201  {object} api.Card
// @Failure  400  {object} api.ErrorResponse
// @Failure  404  {object} api.ErrorResponse
// @Failure  500  {object} api.ErrorResponse
// @Router   /lists/{id}/cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	listID, ok := parseID(c, "list")
	if !ok {
		return
	}

	var req api.CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Title is required"})
		return
	}

	card := &model.Card{
		ListID: listID,
		Title:  strings.TrimSpace(req.Title),
	}
	if req.Description != nil {
		card.Description = *req.Description
	}

	if err := h.cardRepo.Create(c.Request.Context(), card); err != nil {
		storeError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, toCardResponse(*card))
}

// GetByID returns a single card
// @Summary  Get card
// @Tags     Cards
// @Produce  json
// @Param    id  path     string true "Card ID"
// @Success  200 {object} api.Card
// @Failure  400 {object} api.ErrorResponse
// @Failure  404 {object} api.ErrorResponse
// @Router   /cards/{id} [get]
func (h *CardHandler) GetByID(c *gin.Context) {
	cardID, ok := parseID(c, "card")
	if !ok {
		return
	}

	card, err := h.cardRepo.GetByID(c.Request.Context(), cardID)
	if err != nil {
		storeError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, toCardResponse(*card))
}

// Update sets a card's title and, if given, its description
// @Summary  Update card
// @Tags     Cards
// @Accept   json
// @Produce  json
// @Param    id   path     string          true "Card ID"
// @Param    body body     api.CardRequest true "Card"
// @Success  200  {object} api.OKResponse
// @Failure  400  {object} api.ErrorResponse
// @Failure  404  {object} api.ErrorResponse
// @Failure  500  {object} api.ErrorResponse
// @Router   /cards/{id} [patch]
func (h *CardHandler) Update(c *gin.Context) {
	cardID, ok := parseID(c, "card")
	if !ok {
		return
	}

	var req api.CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Title is required"})
		return
	}

	err := h.cardRepo.Update(c.Request.Context(), cardID, strings.TrimSpace(req.Title), req.Description)
	if err != nil {
		storeError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, api.OKResponse{OK: true})
}

// Delete removes a card
// @Summary  Delete card
// @Tags     Cards
// @Produce  json
// @Param    id  path     string true "Card ID"
// @Success  200 {object} api.OKResponse
// @Failure  400 {object} api.ErrorResponse
// @Failure  404 {object} api.ErrorResponse
// @Failure  500 {object} api.ErrorResponse
// @Router   /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	cardID, ok := parseID(c, "card")
	if !ok {
		return
	}

	if err := h.cardRepo.Delete(c.Request.Context(), cardID); err != nil {
		storeError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, api.OKResponse{OK: true})
}
