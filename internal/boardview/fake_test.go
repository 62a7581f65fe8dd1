package boardview_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"taskboard/internal/api"
	"taskboard/internal/apiclient"
	"taskboard/internal/boardview"
)

// fakeClient is an in-memory API. Methods named in failOn return that error.
type fakeClient struct {
	mu     sync.Mutex
	seq    int
	boards []api.Board
	lists  []api.List
	cards  []api.Card
	calls  []string
	failOn map[string]error
}

var _ boardview.Client = (*fakeClient)(nil)

func newFakeClient() *fakeClient { return &fakeClient{failOn: map[string]error{}} }

func (f *fakeClient) record(call string) error {
	f.calls = append(f.calls, call)
	return f.failOn[call]
}

func (f *fakeClient) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s%d", prefix, f.seq)
}

func notFound(what string) error {
	return &apiclient.Error{StatusCode: http.StatusNotFound, Message: what + " not found"}
}

func (f *fakeClient) GetBoards(ctx context.Context) ([]api.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetBoards"); err != nil {
		return nil, err
	}
	return append([]api.Board(nil), f.boards...), nil
}

func (f *fakeClient) CreateBoard(ctx context.Context, name string) (api.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateBoard"); err != nil {
		return api.Board{}, err
	}
	now := time.Now().UTC()
	b := api.Board{ID: f.nextID("b"), Name: name, CreatedAt: now, UpdatedAt: now}
	f.boards = append(f.boards, b)
	return b, nil
}

func (f *fakeClient) GetBoard(ctx context.Context, boardID string) (api.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetBoard"); err != nil {
		return api.Board{}, err
	}
	for _, b := range f.boards {
		if b.ID == boardID {
			return b, nil
		}
	}
	return api.Board{}, notFound("Board")
}

func (f *fakeClient) RenameBoard(ctx context.Context, boardID, name string) (api.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("RenameBoard"); err != nil {
		return api.Board{}, err
	}
	for i := range f.boards {
		if f.boards[i].ID == boardID {
			f.boards[i].Name = name
			f.boards[i].UpdatedAt = f.boards[i].UpdatedAt.Add(time.Second)
			return f.boards[i], nil
		}
	}
	return api.Board{}, notFound("Board")
}

func (f *fakeClient) DeleteBoard(ctx context.Context, boardID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteBoard"); err != nil {
		return err
	}
	for i, b := range f.boards {
		if b.ID == boardID {
			f.boards = append(f.boards[:i], f.boards[i+1:]...)
			return nil
		}
	}
	return notFound("Board")
}

func (f *fakeClient) GetLists(ctx context.Context, boardID string) ([]api.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetLists"); err != nil {
		return nil, err
	}
	var out []api.List
	for _, l := range f.lists {
		if l.BoardID == boardID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeClient) CreateList(ctx context.Context, boardID, name string) (api.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateList"); err != nil {
		return api.List{}, err
	}
	pos := 0
	for _, l := range f.lists {
		if l.BoardID == boardID && l.Position > pos {
			pos = l.Position
		}
	}
	l := api.List{ID: f.nextID("l"), BoardID: boardID, Name: name, Position: pos + 1}
	f.lists = append(f.lists, l)
	return l, nil
}

func (f *fakeClient) RenameList(ctx context.Context, listID, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("RenameList"); err != nil {
		return err
	}
	for i := range f.lists {
		if f.lists[i].ID == listID {
			f.lists[i].Name = name
			return nil
		}
	}
	return notFound("List")
}

func (f *fakeClient) DeleteList(ctx context.Context, listID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteList"); err != nil {
		return err
	}
	for i, l := range f.lists {
		if l.ID == listID {
			f.lists = append(f.lists[:i], f.lists[i+1:]...)
			return nil
		}
	}
	return notFound("List")
}

func (f *fakeClient) GetCards(ctx context.Context, listID string) ([]api.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetCards"); err != nil {
		return nil, err
	}
	out := []api.Card{}
	for _, c := range f.cards {
		if c.ListID == listID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClient) CreateCard(ctx context.Context, listID, title, description string) (api.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateCard"); err != nil {
		return api.Card{}, err
	}
	c := api.Card{ID: f.nextID("c"), ListID: listID, Title: title, Description: description}
	f.cards = append(f.cards, c)
	return c, nil
}

func (f *fakeClient) UpdateCard(ctx context.Context, cardID, title string, description *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateCard"); err != nil {
		return err
	}
	for i := range f.cards {
		if f.cards[i].ID == cardID {
			f.cards[i].Title = title
			if description != nil {
				f.cards[i].Description = *description
			}
			return nil
		}
	}
	return notFound("Card")
}

func (f *fakeClient) DeleteCard(ctx context.Context, cardID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteCard"); err != nil {
		return err
	}
	for i, c := range f.cards {
		if c.ID == cardID {
			f.cards = append(f.cards[:i], f.cards[i+1:]...)
			return nil
		}
	}
	return notFound("Card")
}

func (f *fakeClient) setFailure(call string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failOn[call] = err
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
