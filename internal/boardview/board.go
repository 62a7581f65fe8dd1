package boardview

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"taskboard/internal/api"

	"golang.org/x/sync/errgroup"
)

// maxCardLoads bounds the concurrent card fetches of Load.
const maxCardLoads = 8

// List is a list together with its cards, oldest card first.
type List struct {
	api.List
	Cards []api.Card
}

// Board mirrors one board with its lists ordered by position. Methods are
// safe for concurrent use; mutations are serialized.
type Board struct {
	client Client
	id     string

	mu     sync.Mutex
	loaded bool
	board  api.Board
	lists  []List
}

func NewBoard(client Client, boardID string) *Board {
	return &Board{client: client, id: boardID}
}

func (b *Board) ID() string { return b.id }

// Load fetches the board, then its lists, then the cards of every list
// concurrently. The mirror is replaced only if every fetch succeeds.
func (b *Board) Load(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	board, err := b.client.GetBoard(ctx, b.id)
	if err != nil {
		return err
	}
	lists, err := b.client.GetLists(ctx, b.id)
	if err != nil {
		return err
	}

	mirrored := make([]List, len(lists))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxCardLoads)
	for i, list := range lists {
		i, list := i, list
		mirrored[i].List = list
		g.Go(func() error {
			cards, err := b.client.GetCards(gctx, list.ID)
			if err != nil {
				return fmt.Errorf("load cards of list %q: %w", list.Name, err)
			}
			mirrored[i].Cards = cards
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sortLists(mirrored)
	b.board = board
	b.lists = mirrored
	b.loaded = true
	return nil
}

// Board returns the mirrored board.
func (b *Board) Board() api.Board {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.board
}

// Lists returns a deep copy of the mirrored lists.
func (b *Board) Lists() []List {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]List, len(b.lists))
	for i, l := range b.lists {
		out[i] = List{List: l.List, Cards: slices.Clone(l.Cards)}
	}
	return out
}

// Card looks up a mirrored card by id.
func (b *Board) Card(cardID string) (api.Card, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if li, ci := b.findCard(cardID); li >= 0 {
		return b.lists[li].Cards[ci], true
	}
	return api.Card{}, false
}

// RenameBoard renames the board and mirrors the stored result.
func (b *Board) RenameBoard(ctx context.Context, name string) error {
	name, err := required(name)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return ErrNotLoaded
	}

	board, err := b.client.RenameBoard(ctx, b.id, name)
	if err != nil {
		return err
	}
	b.board = board
	return nil
}

// DeleteBoard deletes the board with everything on it and clears the mirror.
func (b *Board) DeleteBoard(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.client.DeleteBoard(ctx, b.id); err != nil {
		return err
	}
	b.loaded = false
	b.board = api.Board{}
	b.lists = nil
	return nil
}

func (b *Board) CreateList(ctx context.Context, name string) (api.List, error) {
	name, err := required(name)
	if err != nil {
		return api.List{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return api.List{}, ErrNotLoaded
	}

	list, err := b.client.CreateList(ctx, b.id, name)
	if err != nil {
		return api.List{}, err
	}
	b.lists = append(b.lists, List{List: list, Cards: []api.Card{}})
	sortLists(b.lists)
	return list, nil
}

func (b *Board) RenameList(ctx context.Context, listID, name string) error {
	name, err := required(name)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return ErrNotLoaded
	}

	if err := b.client.RenameList(ctx, listID, name); err != nil {
		return err
	}
	if i := b.findList(listID); i >= 0 {
		b.lists[i].Name = name
	}
	return nil
}

// DeleteList deletes a list with its cards.
func (b *Board) DeleteList(ctx context.Context, listID string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return ErrNotLoaded
	}

	if err := b.client.DeleteList(ctx, listID); err != nil {
		return err
	}
	b.lists = slices.DeleteFunc(b.lists, func(l List) bool { return l.ID == listID })
	return nil
}

func (b *Board) CreateCard(ctx context.Context, listID, title, description string) (api.Card, error) {
	title, err := required(title)
	if err != nil {
		return api.Card{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return api.Card{}, ErrNotLoaded
	}

	card, err := b.client.CreateCard(ctx, listID, title, description)
	if err != nil {
		return api.Card{}, err
	}
	if i := b.findList(listID); i >= 0 {
		b.lists[i].Cards = append(b.lists[i].Cards, card)
	}
	return card, nil
}

// UpdateCard sets the title and, when description is non-nil, the
// description of a card.
func (b *Board) UpdateCard(ctx context.Context, cardID, title string, description *string) error {
	title, err := required(title)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return ErrNotLoaded
	}

	if err := b.client.UpdateCard(ctx, cardID, title, description); err != nil {
		return err
	}
	if li, ci := b.findCard(cardID); li >= 0 {
		card := &b.lists[li].Cards[ci]
		card.Title = title
		if description != nil {
			card.Description = *description
		}
	}
	return nil
}

func (b *Board) DeleteCard(ctx context.Context, cardID string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.loaded {
		return ErrNotLoaded
	}

	if err := b.client.DeleteCard(ctx, cardID); err != nil {
		return err
	}
	if li, _ := b.findCard(cardID); li >= 0 {
		b.lists[li].Cards = slices.DeleteFunc(b.lists[li].Cards, func(c api.Card) bool { return c.ID == cardID })
	}
	return nil
}

func (b *Board) findList(listID string) int {
	return slices.IndexFunc(b.lists, func(l List) bool { return l.ID == listID })
}

func (b *Board) findCard(cardID string) (int, int) {
	for li, l := range b.lists {
		if ci := slices.IndexFunc(l.Cards, func(c api.Card) bool { return c.ID == cardID }); ci >= 0 {
			return li, ci
		}
	}
	return -1, -1
}

func sortLists(lists []List) {
	sort.SliceStable(lists, func(i, j int) bool { return lists[i].Position < lists[j].Position })
}
