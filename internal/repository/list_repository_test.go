package repository_test

import (
	"context"
	"testing"

	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRepository_Create_AppendsAfterMaxPosition(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	listRepo := repository.NewListRepository(gormDB)

	boardID := uuid.New()
	list := &model.List{BoardID: boardID, Name: "Doing"}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "boards" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(boardID.String()))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\) as max FROM "lists" WHERE board_id = \$1`).
		WithArgs(boardID).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(4))
	mock.ExpectExec(`INSERT INTO "lists"`).
		WithArgs(sqlmock.AnyArg(), boardID, "Doing", 5, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := listRepo.Create(context.Background(), list)

	require.NoError(t, err)
	assert.Equal(t, 5, list.Position)
	assert.Equal(t, list.CreatedAt, list.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepository_Create_FirstListGetsPositionOne(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	listRepo := repository.NewListRepository(gormDB)

	boardID := uuid.New()
	list := &model.List{BoardID: boardID, Name: "Todo"}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "boards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(boardID.String()))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\)`).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO "lists"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, listRepo.Create(context.Background(), list))
	assert.Equal(t, 1, list.Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepository_Create_BoardNotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	listRepo := repository.NewListRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "boards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := listRepo.Create(context.Background(), &model.List{BoardID: uuid.New(), Name: "Todo"})

	assert.ErrorIs(t, err, repository.ErrBoardNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepository_GetByBoardID_OrderedByPosition(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	listRepo := repository.NewListRepository(gormDB)

	boardID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "lists" WHERE board_id = \$1 ORDER BY position`).
		WithArgs(boardID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "board_id", "name", "position"}).
			AddRow(uuid.NewString(), boardID.String(), "Todo", 1).
			AddRow(uuid.NewString(), boardID.String(), "Done", 3))

	lists, err := listRepo.GetByBoardID(context.Background(), boardID)

	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, 1, lists[0].Position)
	assert.Equal(t, 3, lists[1].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepository_Rename_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	listRepo := repository.NewListRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "lists" SET "name"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := listRepo.Rename(context.Background(), uuid.New(), "Later")

	assert.ErrorIs(t, err, repository.ErrListNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepository_Delete_RemovesCardsThenList(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	listRepo := repository.NewListRepository(gormDB)

	listID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cards" WHERE list_id = \$1`).
		WithArgs(listID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "lists" WHERE id = \$1`).
		WithArgs(listID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, listRepo.Delete(context.Background(), listID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRepository_Delete_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	listRepo := repository.NewListRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cards"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "lists"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := listRepo.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrListNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
