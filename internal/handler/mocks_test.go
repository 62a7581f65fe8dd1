package handler_test

import (
	"context"

	"taskboard/internal/database"
	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) GetAll(ctx context.Context) ([]model.Board, error) {
	args := m.Called(ctx)
	boards, _ := args.Get(0).([]model.Board)
	return boards, args.Error(1)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, id)
	board, _ := args.Get(0).(*model.Board)
	return board, args.Error(1)
}

func (m *MockBoardRepository) Rename(ctx context.Context, id uuid.UUID, name string) (*model.Board, error) {
	args := m.Called(ctx, id, name)
	board, _ := args.Get(0).(*model.Board)
	return board, args.Error(1)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoardRepository) Snapshot(ctx context.Context, id uuid.UUID) (*repository.BoardSnapshot, error) {
	args := m.Called(ctx, id)
	snap, _ := args.Get(0).(*repository.BoardSnapshot)
	return snap, args.Error(1)
}

type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.List, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).(*model.List)
	return list, args.Error(1)
}

func (m *MockListRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	args := m.Called(ctx, boardID)
	lists, _ := args.Get(0).([]model.List)
	return lists, args.Error(1)
}

func (m *MockListRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	args := m.Called(ctx, id)
	card, _ := args.Get(0).(*model.Card)
	return card, args.Error(1)
}

func (m *MockCardRepository) GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	args := m.Called(ctx, listID)
	cards, _ := args.Get(0).([]model.Card)
	return cards, args.Error(1)
}

func (m *MockCardRepository) Update(ctx context.Context, id uuid.UUID, title string, description *string) error {
	args := m.Called(ctx, id, title, description)
	return args.Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStatusChecker struct {
	mock.Mock
}

func (m *MockStatusChecker) Status(ctx context.Context) (database.Status, error) {
	args := m.Called(ctx)
	return args.Get(0).(database.Status), args.Error(1)
}

type mocks struct {
	boards *MockBoardRepository
	lists  *MockListRepository
	cards  *MockCardRepository
	health *MockStatusChecker
}

func (m mocks) assertExpectations(t mock.TestingT) {
	m.boards.AssertExpectations(t)
	m.lists.AssertExpectations(t)
	m.cards.AssertExpectations(t)
	m.health.AssertExpectations(t)
}

func setupTest() (*gin.Engine, mocks) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := mocks{
		boards: new(MockBoardRepository),
		lists:  new(MockListRepository),
		cards:  new(MockCardRepository),
		health: new(MockStatusChecker),
	}

	boardHandler := handler.NewBoardHandler(m.boards)
	listHandler := handler.NewListHandler(m.lists)
	cardHandler := handler.NewCardHandler(m.cards)
	healthHandler := handler.NewHealthHandler(m.health)

	r.GET("/boards", boardHandler.GetAll)
	r.POST("/boards", boardHandler.Create)
	r.GET("/boards/:id", boardHandler.GetByID)
	r.PATCH("/boards/:id", boardHandler.Rename)
	r.DELETE("/boards/:id", boardHandler.Delete)
	r.GET("/boards/:id/export", boardHandler.Export)
	r.GET("/boards/:id/lists", listHandler.GetByBoard)
	r.POST("/boards/:id/lists", listHandler.Create)
	r.GET("/lists/:id", listHandler.GetByID)
	r.PATCH("/lists/:id", listHandler.Rename)
	r.DELETE("/lists/:id", listHandler.Delete)
	r.GET("/lists/:id/cards", cardHandler.GetByList)
	r.POST("/lists/:id/cards", cardHandler.Create)
	r.GET("/cards/:id", cardHandler.GetByID)
	r.PATCH("/cards/:id", cardHandler.Update)
	r.DELETE("/cards/:id", cardHandler.Delete)
	r.GET("/health/db", healthHandler.Database)

	return r, m
}
