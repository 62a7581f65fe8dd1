package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// Create assigns an ID and equal creation/update timestamps, then inserts.
func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	if board.ID == uuid.Nil {
		board.ID = uuid.New()
	}
	board.CreatedAt = now()
	board.UpdatedAt = board.CreatedAt
	return r.db.WithContext(ctx).Create(board).Error
}

// GetAll returns every board, oldest first.
func (r *BoardRepository) GetAll(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}

// Rename sets name and updated_at in one statement and returns the row.
func (r *BoardRepository) Rename(ctx context.Context, id uuid.UUID, name string) (*model.Board, error) {
	var board model.Board
	result := r.db.WithContext(ctx).Model(&board).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "updated_at": now()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 || board.ID == uuid.Nil {
		return nil, ErrBoardNotFound
	}
	return &board, nil
}

// Delete removes the board's cards, then its lists, then the board itself.
// Dependents are removed even when the board row is already gone; only the
// final delete decides whether ErrBoardNotFound is reported.
func (r *BoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listIDs []uuid.UUID
		if err := tx.Model(&model.List{}).Where("board_id = ?", id).Pluck("id", &listIDs).Error; err != nil {
			return err
		}

		if len(listIDs) > 0 {
			if err := tx.Where("list_id IN ?", listIDs).Delete(&model.Card{}).Error; err != nil {
				return err
			}
			if err := tx.Where("board_id = ?", id).Delete(&model.List{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&model.Board{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrBoardNotFound
	}
	return nil
}

// BoardSnapshot is a board with all of its lists and cards.
type BoardSnapshot struct {
	Board model.Board
	Lists []model.List
	Cards []model.Card
}

// Snapshot reads a board and its descendants in one read-only transaction.
func (r *BoardRepository) Snapshot(ctx context.Context, id uuid.UUID) (*BoardSnapshot, error) {
	var snap BoardSnapshot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&snap.Board).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			return err
		}
		if err := tx.Where("board_id = ?", id).Order("position").Find(&snap.Lists).Error; err != nil {
			return err
		}
		if len(snap.Lists) == 0 {
			return nil
		}
		listIDs := make([]uuid.UUID, len(snap.Lists))
		for i, l := range snap.Lists {
			listIDs[i] = l.ID
		}
		return tx.Where("list_id IN ?", listIDs).Order("created_at ASC, id ASC").Find(&snap.Cards).Error
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
