package repository

import (
	"context"
	"errors"

	"taskboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

// Create appends the list to its board: position is one past the board's
// current maximum, or 1 for the first list. The board row is locked while
// the position is chosen so concurrent creates cannot collide.
func (r *ListRepository) Create(ctx context.Context, list *model.List) error {
	if list.ID == uuid.Nil {
		list.ID = uuid.New()
	}
	list.CreatedAt = now()
	list.UpdatedAt = list.CreatedAt

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var board model.Board
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", list.BoardID).
			First(&board).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBoardNotFound
			}
			return err
		}

		maxPosition, err := getMaxPosition(tx, list.BoardID)
		if err != nil {
			return err
		}
		list.Position = maxPosition + 1

		return tx.Create(list).Error
	})
}

func (r *ListRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.List, error) {
	var list model.List
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (r *ListRepository) GetByBoardID(ctx context.Context, boardID uuid.UUID) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Order("position").Find(&lists).Error
	return lists, err
}

func (r *ListRepository) GetMaxPosition(ctx context.Context, boardID uuid.UUID) (int, error) {
	return getMaxPosition(r.db.WithContext(ctx), boardID)
}

func getMaxPosition(db *gorm.DB, boardID uuid.UUID) (int, error) {
	var maxPosition struct {
		Max int
	}
	err := db.Model(&model.List{}).
		Select("COALESCE(MAX(position), 0) as max").
		Where("board_id = ?", boardID).
		Scan(&maxPosition).Error

	return maxPosition.Max, err
}

func (r *ListRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	result := r.db.WithContext(ctx).Model(&model.List{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "updated_at": now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrListNotFound
	}
	return nil
}

// Delete removes the list's cards and then the list.
func (r *ListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&model.Card{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.List{}, "id = ?", id)
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
		return ErrListNotFound
	}
	return nil
}
