package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	body   map[string]any
}

func newServer(t *testing.T, status int, response string) (*apiclient.APIClient, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			assert.NoError(t, json.Unmarshal(raw, &rec.body))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL + "/"), rec
}

func TestGetBoards(t *testing.T) {
	client, rec := newServer(t, http.StatusOK,
		`[{"id":"b1","name":"Sprint 1","createdAt":"2024-03-01T10:00:00Z","updatedAt":"2024-03-01T10:00:00Z"}]`)

	boards, err := client.GetBoards(context.Background())

	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "Sprint 1", boards[0].Name)
	assert.Equal(t, 2024, boards[0].CreatedAt.Year())
	assert.Equal(t, "GET", rec.method)
	assert.Equal(t, "/boards", rec.path)
}

func TestCreateBoard_SendsName(t *testing.T) {
	client, rec := newServer(t, http.StatusCreated, `{"id":"b1","name":"Sprint 1"}`)

	board, err := client.CreateBoard(context.Background(), "Sprint 1")

	require.NoError(t, err)
	assert.Equal(t, "b1", board.ID)
	assert.Equal(t, "POST", rec.method)
	assert.Equal(t, "Sprint 1", rec.body["name"])
}

func TestErrorCarriesServerMessage(t *testing.T) {
	client, _ := newServer(t, http.StatusBadRequest, `{"error":"Board name is required"}`)

	_, err := client.CreateBoard(context.Background(), " ")

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Board name is required", apiErr.Error())
	assert.False(t, apiclient.IsNotFound(err))
}

func TestErrorWithoutBody(t *testing.T) {
	client, _ := newServer(t, http.StatusNotFound, ``)

	err := client.DeleteCard(context.Background(), "c1")

	assert.True(t, apiclient.IsNotFound(err))
	assert.EqualError(t, err, "backend returned status 404")
}

func TestDeleteBoard_RequiresSuccessFlag(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, `{"success":true}`)
	require.NoError(t, client.DeleteBoard(context.Background(), "b1"))
	assert.Equal(t, "DELETE", rec.method)
	assert.Equal(t, "/boards/b1", rec.path)

	client, _ = newServer(t, http.StatusOK, `{}`)
	assert.Error(t, client.DeleteBoard(context.Background(), "b1"))
}

func TestListEndpoints(t *testing.T) {
	client, rec := newServer(t, http.StatusCreated, `{"id":"l1","boardId":"b1","name":"Todo","position":1}`)
	list, err := client.CreateList(context.Background(), "b1", "Todo")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Position)
	assert.Equal(t, "/boards/b1/lists", rec.path)

	client, rec = newServer(t, http.StatusOK, `{"ok":true}`)
	require.NoError(t, client.RenameList(context.Background(), "l1", "Doing"))
	assert.Equal(t, "PATCH", rec.method)
	assert.Equal(t, "/lists/l1", rec.path)
	assert.Equal(t, "Doing", rec.body["name"])

	client, rec = newServer(t, http.StatusOK, `[]`)
	lists, err := client.GetLists(context.Background(), "b1")
	require.NoError(t, err)
	assert.Empty(t, lists)
	assert.Equal(t, "GET", rec.method)
}

func TestCreateCard_AlwaysSendsDescription(t *testing.T) {
	client, rec := newServer(t, http.StatusCreated, `{"id":"c1","listId":"l1","title":"Fix bug","description":""}`)

	card, err := client.CreateCard(context.Background(), "l1", "Fix bug", "")

	require.NoError(t, err)
	assert.Equal(t, "c1", card.ID)
	assert.Equal(t, "/lists/l1/cards", rec.path)
	assert.Contains(t, rec.body, "description")
	assert.Equal(t, "", rec.body["description"])
}

func TestUpdateCard_NilDescriptionIsNull(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, `{"ok":true}`)

	require.NoError(t, client.UpdateCard(context.Background(), "c1", "Renamed", nil))

	assert.Equal(t, "PATCH", rec.method)
	assert.Equal(t, "/cards/c1", rec.path)
	assert.Equal(t, "Renamed", rec.body["title"])
	assert.Nil(t, rec.body["description"])
}

func TestDatabaseHealth_Down(t *testing.T) {
	client, _ := newServer(t, http.StatusInternalServerError, `{"ok":false,"error":"connection refused"}`)

	_, err := client.DatabaseHealth(context.Background())

	var apiErr *apiclient.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "connection refused", apiErr.Message)
}

func TestExportBoard(t *testing.T) {
	client, rec := newServer(t, http.StatusOK, "board:\n  name: Sprint 1\n")

	out, err := client.ExportBoard(context.Background(), "b1")

	require.NoError(t, err)
	assert.Contains(t, string(out), "Sprint 1")
	assert.Equal(t, "/boards/b1/export", rec.path)
}

func TestBackendUnavailable(t *testing.T) {
	client := apiclient.New("http://127.0.0.1:1")

	_, err := client.GetBoards(context.Background())

	require.Error(t, err)
	var apiErr *apiclient.Error
	assert.False(t, errors.As(err, &apiErr))
}
