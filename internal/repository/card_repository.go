package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create adds a new card to an existing list
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	card.CreatedAt = now()
	card.UpdatedAt = card.CreatedAt

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list model.List
		if err := tx.Select("id").Where("id = ?", card.ListID).First(&list).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListNotFound
			}
			return err
		}
		return tx.Create(card).Error
	})
}

// GetByID retrieves a card by its ID
func (r *CardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).First(&card, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

// GetByListID retrieves all cards in a list, oldest first
func (r *CardRepository) GetByListID(ctx context.Context, listID uuid.UUID) ([]model.Card, error) {
	var cards []model.Card
	result := r.db.WithContext(ctx).Where("list_id = ?", listID).Order("created_at ASC, id ASC").Find(&cards)
	if result.Error != nil {
		return nil, result.Error
	}
	return cards, nil
}

// Update sets the title and, when description is non-nil, the description.
func (r *CardRepository) Update(ctx context.Context, id uuid.UUID, title string, description *string) error {
	fields := map[string]interface{}{"title": title, "updated_at": now()}
	if description != nil {
		fields["description"] = *description
	}

	result := r.db.WithContext(ctx).Model(&model.Card{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// Delete removes a card by its ID
func (r *CardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
