package handler

import (
	"net/http"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/model"

	"github.com/gin-gonic/gin"
)

type ListHandler struct {
	listRepo ListStore
}

func NewListHandler(listRepo ListStore) *ListHandler {
	return &ListHandler{listRepo: listRepo}
}

// GetByBoard lists a board's lists by position
// @Summary  List lists of a board
// @Tags     Lists
// @Produce  json
// @Param    id  path     string true "Board ID"
// @Success  200 {array}  api.List
// @Failure  400 {object} api.ErrorResponse
// @Failure  500 {object} api.ErrorResponse
// @Router   /boards/{id}/lists [get]
func (h *ListHandler) GetByBoard(c *gin.Context) {
	boardID, ok := parseID(c, "board")
	if !ok {
		return
	}

	lists, err := h.listRepo.GetByBoardID(c.Request.Context(), boardID)
	if err != nil {
		storeError(c, err, "Failed to retrieve lists")
		return
	}

	response := make([]api.List, len(lists))
	for i, list := range lists {
		response[i] = toListResponse(list)
	}

	c.JSON(http.StatusOK, response)
}

// Create appends a list to a board
// @Summary  Create list
// @Tags     Lists
// @Accept   json
// @Produce  json
// @Param    id   path     string          true "Board ID"
// @Param    body body     api.NameRequest true "List name"
// @Success  201  {object} api.List
// @Failure  400  {object} api.ErrorResponse
// @Failure  404  {object} api.ErrorResponse
// @Failure  500  {object} api.ErrorResponse
// @Router   /boards/{id}/lists [post]
func (h *ListHandler) Create(c *gin.Context) {
	boardID, ok := parseID(c, "board")
	if !ok {
		return
	}

	var req api.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Name is required"})
		return
	}

	list := &model.List{
		BoardID: boardID,
		Name:    strings.TrimSpace(req.Name),
	}
	if err := h.listRepo.Create(c.Request.Context(), list); err != nil {
		storeError(c, err, "Failed to create list")
		return
	}

	c.JSON(http.StatusCreated, toListResponse(*list))
}

// GetByID returns a single list
// @Summary  Get list
// @Tags     Lists
// @Produce  json
// @Param    id  path     string true "List ID"
// @Success  200 {object} api.List
// @Failure  400 {object} api.ErrorResponse
// @Failure  404 {object} api.ErrorResponse
// @Router   /lists/{id} [get]
func (h *ListHandler) GetByID(c *gin.Context) {
	listID, ok := parseID(c, "list")
	if !ok {
		return
	}

	list, err := h.listRepo.GetByID(c.Request.Context(), listID)
	if err != nil {
		storeError(c, err, "Failed to retrieve list")
		return
	}

	c.JSON(http.StatusOK, toListResponse(*list))
}

// Rename changes a list's name
// @Summary  Rename list
// @Tags     Lists
// @Accept   json
// @Produce  json
// @Param    id   path     string          true "List ID"
// @Param    body body     api.NameRequest true "New name"
// @Success  200  {object} api.OKResponse
// @Failure  400  {object} api.ErrorResponse
// @Failure  404  {object} api.ErrorResponse
// @Failure  500  {object} api.ErrorResponse
// @Router   /lists/{id} [patch]
func (h *ListHandler) Rename(c *gin.Context) {
	listID, ok := parseID(c, "list")
	if !ok {
		return
	}

	var req api.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Name is required"})
		return
	}

	if err := h.listRepo.Rename(c.Request.Context(), listID, strings.TrimSpace(req.Name)); err != nil {
		storeError(c, err, "Failed to update list")
		return
	}

	c.JSON(http.StatusOK, api.OKResponse{OK: true})
}

// Delete removes a list and its cards
// @Summary  Delete list
// @Tags     Lists
// @Produce  json
// @Param    id  path     string true "List ID"
// @Success  200 {object} api.OKResponse
// @Failure  400 {object} api.ErrorResponse
// @Failure  404 {object} api.ErrorResponse
// @Failure  500 {object} api.ErrorResponse
// @Router   /lists/{id} [delete]
func (h *ListHandler) Delete(c *gin.Context) {
	listID, ok := parseID(c, "list")
	if !ok {
		return
	}

	if err := h.listRepo.Delete(c.Request.Context(), listID); err != nil {
		storeError(c, err, "Failed to delete list")
		return
	}

	c.JSON(http.StatusOK, api.OKResponse{OK: true})
}
