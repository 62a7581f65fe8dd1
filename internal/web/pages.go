package web

import (
	"taskboard/internal/api"
	"taskboard/internal/boardview"
)

type indexPage struct {
	Title  string
	Boards []api.Board
	Error  string
}

type boardPage struct {
	Title   string
	Board   api.Board
	Lists   []boardview.List
	Card    *cardModal
	Confirm *confirmModal
	Error   string
}

type cardModal struct {
	Card   api.Card
	Action string
	Delete string
}

// confirmModal asks before a delete is sent. Action receives the POST.
type confirmModal struct {
	Message string
	Action  string
	Cancel  string
}

type errorPage struct {
	Title string
	Error string
}
