// Package api defines the JSON contract shared by the HTTP handlers and the
// client. Timestamps are encoded as RFC 3339.
package api

import "time"

type Board struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

type List struct {
	ID        string    `json:"id" yaml:"id"`
	BoardID   string    `json:"boardId" yaml:"boardId"`
	Name      string    `json:"name" yaml:"name"`
	Position  int       `json:"position" yaml:"position"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

type Card struct {
	ID          string    `json:"id" yaml:"id"`
	ListID      string    `json:"listId" yaml:"listId"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// NameRequest is the body of board/list create and rename.
type NameRequest struct {
	Name string `json:"name" binding:"required,nonblank"`
}

// CardRequest is the body of card create and update. A nil Description
// leaves the stored value untouched on update and means "" on create.
type CardRequest struct {
	Title       string  `json:"title" binding:"required,nonblank"`
	Description *string `json:"description"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the database health probe.
type HealthResponse struct {
	OK          bool             `json:"ok"`
	Version     string           `json:"version,omitempty"`
	Collections map[string]int64 `json:"collections,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// BoardExport is the YAML document produced by the export endpoint.
type BoardExport struct {
	Board Board        `yaml:"board"`
	Lists []ListExport `yaml:"lists"`
}

type ListExport struct {
	List  `yaml:",inline"`
	Cards []Card `yaml:"cards"`
}
