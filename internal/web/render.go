package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"taskboard/internal/apiclient"
	"taskboard/internal/boardview"
	"taskboard/internal/logger"
	"taskboard/internal/markdown"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

const baseTemplate = "templates/base.html"

func loadTemplates(md *markdown.Renderer) (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"markdown": md.Render,
		"excerpt":  markdown.Excerpt,
	}

	pages := []string{"index.html", "board.html", "error.html"}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS, baseTemplate, "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return templates, nil
}

func (h *Handler) render(c *gin.Context, status int, name string, data any) {
	tmpl, ok := h.templates[name]
	if !ok {
		c.String(http.StatusInternalServerError, "Template %s not found", name)
		return
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, "base", data); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		c.String(http.StatusInternalServerError, "Internal Server Error rendering template")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// renderError shows a standalone error page, used when there is no board
// to draw the banner on.
func (h *Handler) renderError(c *gin.Context, err error) {
	h.render(c, errorStatus(err), "error.html", errorPage{Title: "Error", Error: errorMessage(err)})
}

// errorStatus maps a client-side failure onto the status of the page.
func errorStatus(err error) int {
	var apiErr *apiclient.Error
	switch {
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= http.StatusInternalServerError {
			return http.StatusBadGateway
		}
		return apiErr.StatusCode
	case errors.Is(err, boardview.ErrBlank), errors.Is(err, boardview.ErrConfirmationRequired):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func errorMessage(err error) string {
	var apiErr *apiclient.Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, boardview.ErrBlank):
		return "A name is required."
	case errors.Is(err, boardview.ErrConfirmationRequired):
		return "Please confirm the delete."
	default:
		return "The board service is unavailable. Try again later."
	}
}
