// Package web serves the board pages. All state lives behind the API; each
// request loads a fresh mirror through boardview.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"taskboard/internal/boardview"
	"taskboard/internal/logger"
	"taskboard/internal/markdown"
	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Client is the API surface the pages need.
type Client interface {
	boardview.Client
	ExportBoard(ctx context.Context, boardID string) ([]byte, error)
}

type Handler struct {
	client    Client
	templates map[string]*template.Template
}

func New(client Client, md *markdown.Renderer) (*Handler, error) {
	templates, err := loadTemplates(md)
	if err != nil {
		return nil, err
	}
	return &Handler{client: client, templates: templates}, nil
}

// Router registers every page and form action.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery())

	r.GET("/", h.Index)
	r.POST("/boards", h.CreateBoard)
	r.GET("/boards/:id", h.Board)
	r.GET("/boards/:id/export", h.Export)
	r.POST("/boards/:id/rename", h.RenameBoard)
	r.POST("/boards/:id/delete", h.DeleteBoard)
	r.POST("/boards/:id/lists", h.CreateList)
	r.POST("/boards/:id/lists/:listId/rename", h.RenameList)
	r.POST("/boards/:id/lists/:listId/delete", h.DeleteList)
	r.POST("/boards/:id/lists/:listId/cards", h.CreateCard)
	r.POST("/boards/:id/cards/:cardId", h.UpdateCard)
	r.POST("/boards/:id/cards/:cardId/delete", h.DeleteCard)

	return r
}

func (h *Handler) Index(c *gin.Context) {
	ix := boardview.NewIndex(h.client)
	if err := ix.Load(c.Request.Context()); err != nil {
		h.logFailure(c, err)
		h.render(c, errorStatus(err), "index.html", indexPage{Title: "Boards", Error: errorMessage(err)})
		return
	}
	h.render(c, http.StatusOK, "index.html", indexPage{Title: "Boards", Boards: ix.Boards()})
}

func (h *Handler) CreateBoard(c *gin.Context) {
	ctx := c.Request.Context()
	ix := boardview.NewIndex(h.client)

	if _, err := ix.CreateBoard(ctx, c.PostForm("name")); err != nil {
		h.logFailure(c, err)
		page := indexPage{Title: "Boards", Error: errorMessage(err)}
		if loadErr := ix.Load(ctx); loadErr == nil {
			page.Boards = ix.Boards()
		}
		h.render(c, errorStatus(err), "index.html", page)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Board renders a board. ?card=<id> opens the card dialog and
// ?confirm=board|list:<id>|card:<id> opens a delete confirmation.
func (h *Handler) Board(c *gin.Context) {
	view, ok := h.load(c)
	if !ok {
		return
	}

	page := h.boardPage(view)
	if cardID := c.Query("card"); cardID != "" {
		page.Card = cardDialog(view, cardID)
	}
	if target := c.Query("confirm"); target != "" {
		page.Confirm = confirmDialog(view, target)
	}
	h.render(c, http.StatusOK, "board.html", page)
}

func (h *Handler) Export(c *gin.Context) {
	boardID := c.Param("id")
	out, err := h.client.ExportBoard(c.Request.Context(), boardID)
	if err != nil {
		h.logFailure(c, err)
		h.renderError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="board-%s.yaml"`, boardID))
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", out)
}

func (h *Handler) RenameBoard(c *gin.Context) {
	h.mutate(c, "", func(ctx context.Context, view *boardview.Board) error {
		return view.RenameBoard(ctx, c.PostForm("name"))
	})
}

func (h *Handler) DeleteBoard(c *gin.Context) {
	view := boardview.NewBoard(h.client, c.Param("id"))
	err := view.DeleteBoard(c.Request.Context(), confirmed(c))
	if errors.Is(err, boardview.ErrConfirmationRequired) {
		c.Redirect(http.StatusSeeOther, boardURL(view.ID())+"?confirm=board")
		return
	}
	if err != nil {
		h.logFailure(c, err)
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) CreateList(c *gin.Context) {
	h.mutate(c, "", func(ctx context.Context, view *boardview.Board) error {
		_, err := view.CreateList(ctx, c.PostForm("name"))
		return err
	})
}

func (h *Handler) RenameList(c *gin.Context) {
	h.mutate(c, "", func(ctx context.Context, view *boardview.Board) error {
		return view.RenameList(ctx, c.Param("listId"), c.PostForm("name"))
	})
}

func (h *Handler) DeleteList(c *gin.Context) {
	listID := c.Param("listId")
	h.mutate(c, "list:"+listID, func(ctx context.Context, view *boardview.Board) error {
		return view.DeleteList(ctx, listID, confirmed(c))
	})
}

func (h *Handler) CreateCard(c *gin.Context) {
	h.mutate(c, "", func(ctx context.Context, view *boardview.Board) error {
		_, err := view.CreateCard(ctx, c.Param("listId"), c.PostForm("title"), strings.TrimSpace(c.PostForm("description")))
		return err
	})
}

// UpdateCard saves the card dialog. A form without a description field
// leaves the stored description alone.
func (h *Handler) UpdateCard(c *gin.Context) {
	cardID := c.Param("cardId")
	var description *string
	if d, ok := c.GetPostForm("description"); ok {
		d = strings.TrimSpace(d)
		description = &d
	}

	h.mutateWithCard(c, cardID, "", func(ctx context.Context, view *boardview.Board) error {
		return view.UpdateCard(ctx, cardID, c.PostForm("title"), description)
	})
}

func (h *Handler) DeleteCard(c *gin.Context) {
	cardID := c.Param("cardId")
	h.mutate(c, "card:"+cardID, func(ctx context.Context, view *boardview.Board) error {
		return view.DeleteCard(ctx, cardID, confirmed(c))
	})
}

func (h *Handler) mutate(c *gin.Context, confirmTarget string, fn func(context.Context, *boardview.Board) error) {
	h.mutateWithCard(c, "", confirmTarget, fn)
}

// mutateWithCard loads the board, applies fn and redirects back to the
// board. On failure the board is rendered with an error banner, keeping the
// card dialog open when cardID is set. An unconfirmed delete redirects to
// the confirmation dialog for confirmTarget.
func (h *Handler) mutateWithCard(c *gin.Context, cardID, confirmTarget string, fn func(context.Context, *boardview.Board) error) {
	view, ok := h.load(c)
	if !ok {
		return
	}

	err := fn(c.Request.Context(), view)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, boardURL(view.ID()))
	case errors.Is(err, boardview.ErrConfirmationRequired) && confirmTarget != "":
		c.Redirect(http.StatusSeeOther, boardURL(view.ID())+"?confirm="+url.QueryEscape(confirmTarget))
	default:
		h.logFailure(c, err)
		page := h.boardPage(view)
		page.Error = errorMessage(err)
		if cardID != "" {
			page.Card = cardDialog(view, cardID)
		}
		h.render(c, errorStatus(err), "board.html", page)
	}
}

func (h *Handler) load(c *gin.Context) (*boardview.Board, bool) {
	view := boardview.NewBoard(h.client, c.Param("id"))
	if err := view.Load(c.Request.Context()); err != nil {
		h.logFailure(c, err)
		h.renderError(c, err)
		return nil, false
	}
	return view, true
}

func (h *Handler) boardPage(view *boardview.Board) boardPage {
	board := view.Board()
	return boardPage{
		Title: board.Name,
		Board: board,
		Lists: view.Lists(),
	}
}

func (h *Handler) logFailure(c *gin.Context, err error) {
	if errors.Is(err, boardview.ErrBlank) || errors.Is(err, boardview.ErrConfirmationRequired) {
		return
	}
	logger.Log.Warn("board action failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
}

func cardDialog(view *boardview.Board, cardID string) *cardModal {
	card, ok := view.Card(cardID)
	if !ok {
		return nil
	}
	base := boardURL(view.ID())
	return &cardModal{
		Card:   card,
		Action: base + "/cards/" + url.PathEscape(card.ID),
		Delete: base + "?confirm=" + url.QueryEscape("card:"+card.ID),
	}
}

func confirmDialog(view *boardview.Board, target string) *confirmModal {
	base := boardURL(view.ID())
	kind, id, _ := strings.Cut(target, ":")

	switch kind {
	case "board":
		return &confirmModal{
			Message: fmt.Sprintf("Delete board %q with all of its lists and cards?", view.Board().Name),
			Action:  base + "/delete",
			Cancel:  base,
		}
	case "list":
		for _, l := range view.Lists() {
			if l.ID == id {
				return &confirmModal{
					Message: fmt.Sprintf("Delete list %q and all its cards?", l.Name),
					Action:  base + "/lists/" + url.PathEscape(id) + "/delete",
					Cancel:  base,
				}
			}
		}
	case "card":
		if card, ok := view.Card(id); ok {
			return &confirmModal{
				Message: fmt.Sprintf("Delete card %q?", card.Title),
				Action:  base + "/cards/" + url.PathEscape(id) + "/delete",
				Cancel:  base + "?card=" + url.QueryEscape(id),
			}
		}
	}
	return nil
}

func confirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "yes"
}

func boardURL(boardID string) string {
	return "/boards/" + url.PathEscape(boardID)
}
